// SPDX-License-Identifier: AGPL-3.0-only

package interval

import (
	"unsafe"

	jsoniter "github.com/json-iterator/go"
)

func init() {
	jsoniter.RegisterTypeEncoderFunc("interval.Interval", encodeInterval, func(ptr unsafe.Pointer) bool {
		return (*Interval)(ptr).IsZero()
	})
	jsoniter.RegisterTypeDecoderFunc("interval.Interval", decodeInterval)
}

func encodeInterval(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	i := (*Interval)(ptr)

	stream.WriteObjectStart()
	stream.WriteObjectField("start")
	stream.WriteString(formatTimestamp(i.start))
	stream.WriteMore()
	stream.WriteObjectField("end")
	stream.WriteString(formatTimestamp(i.end))
	stream.WriteObjectEnd()
}

func decodeInterval(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	i := (*Interval)(ptr)

	start := ""
	end := ""

	iter.ReadObjectCB(func(iter *jsoniter.Iterator, key string) bool {
		switch key {
		case "start":
			start = iter.ReadString()
		case "end":
			end = iter.ReadString()
		default:
			// Unknown field, skip.
			iter.Skip()
		}

		return true
	})

	if start == "" && end == "" {
		*i = Interval{}
		return
	}

	decoded, err := Parse(start, end)
	if err != nil {
		iter.ReportError("decodeInterval", err.Error())
		return
	}

	*i = decoded
}
