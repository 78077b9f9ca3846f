package generator

import (
	"bytes"
	"fmt"

	"github.com/openapigen/openapigen/config"
	"github.com/openapigen/openapigen/resolver"
)

// emitShared renders one type alias per configured shared type, in
// declared order. An entry is rendered structurally, never as a reference
// to itself; nested schemas still match other entries.
func (e *emitter) emitShared(cfg *config.Config) ([]byte, error) {
	var b bytes.Buffer
	for name, s := range cfg.SharedSchemas.All() {
		ts, err := e.rawType(s, indentStep, resolver.Inherited{})
		if err != nil {
			return nil, fmt.Errorf("shared type %s: %w", name, err)
		}
		fmt.Fprintf(&b, "export type %s = %s\n", name, ts)
		e.typeCount++
	}
	return b.Bytes(), nil
}
