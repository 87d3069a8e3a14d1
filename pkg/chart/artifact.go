// SPDX-License-Identifier: AGPL-3.0-only

package chart

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// WriteJSON serializes a chart dataset and writes it as an artifact for the
// external renderer.
func WriteJSON(fs afero.Fs, path string, dataset any) error {
	buf, err := json.MarshalIndent(dataset, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "marshaling chart artifact %s", path)
	}
	if err := afero.WriteFile(fs, path, buf, 0o644); err != nil {
		return errors.Wrapf(err, "writing chart artifact %s", path)
	}
	return nil
}
