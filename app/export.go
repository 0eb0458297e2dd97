package app

import (
	"fmt"
	"io"

	errorsmod "cosmossdk.io/errors"
	"gopkg.in/yaml.v2"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ExportChainSpec renders the chain spec in the requested format and writes
// it to w.
func ExportChainSpec(cs *ChainSpec, w io.Writer, format string) error {
	bz, err := cs.ToJSON()
	if err != nil {
		return err
	}

	switch format {
	case FormatJSON, "":
	case FormatYAML:
		// JSON is a YAML subset; MapSlice keeps the key order of the document.
		var doc yaml.MapSlice
		if err := yaml.Unmarshal(bz, &doc); err != nil {
			return errorsmod.Wrap(ErrMalformedChainSpec, err.Error())
		}
		if bz, err = yaml.Marshal(doc); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}

	if _, err := w.Write(bz); err != nil {
		return err
	}
	if format != FormatYAML {
		_, err = io.WriteString(w, "\n")
	}
	return err
}
