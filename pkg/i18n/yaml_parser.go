package i18n

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLParser reads catalog files whose top-level keys are language codes:
//
//	ja:
//	  nav:
//	    dashboard: ダッシュボード
type YAMLParser struct{}

// NewYAMLParser returns a YAMLParser.
func NewYAMLParser() *YAMLParser { return &YAMLParser{} }

// Parse decodes one catalog file.
func (YAMLParser) Parse(ctx context.Context, content string) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrYAMLParsingCancelled, err)
	}

	var langs map[string]map[string]any
	dec := yaml.NewDecoder(bytes.NewBufferString(content))
	if err := dec.Decode(&langs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrFailedToParseYAML)
		}
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	if len(langs) == 0 {
		return nil, fmt.Errorf("%w: no languages", ErrFailedToParseYAML)
	}
	return langs, nil
}

// SupportsFileExtension accepts .yaml and .yml in any case.
func (YAMLParser) SupportsFileExtension(ext string) bool {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "yaml", "yml":
		return true
	}
	return false
}
