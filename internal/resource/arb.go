package resource

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ExportARB serializes the table to an ARB document at path. The layout is a
// flat key→value mapping with an interleaved @key metadata entry per key,
// sorted lexicographically, two-space indented. encoding/json map ordering
// would sort every "@" entry ahead of the keys, so the document is built by
// hand with json-escaped scalars.
func (t *Table) ExportARB(path, locale string) error {
	var b bytes.Buffer
	b.WriteString("{\n")
	fmt.Fprintf(&b, "  %s: %s", jsonString("@@locale"), jsonString(locale))

	for _, key := range t.SortedKeys() {
		e := t.entries[key]
		b.WriteString(",\n")
		fmt.Fprintf(&b, "  %s: %s,\n", jsonString(key), jsonString(e.Value))
		fmt.Fprintf(&b, "  %s: {\n", jsonString("@"+key))
		fmt.Fprintf(&b, "    \"description\": %s", jsonString(e.Description))
		if len(e.Placeholders) > 0 {
			b.WriteString(",\n    \"placeholders\": {\n")
			for i, p := range e.Placeholders {
				fmt.Fprintf(&b, "      %s: {\n", jsonString(p.Name))
				fmt.Fprintf(&b, "        \"type\": %s,\n", jsonString(p.Type))
				fmt.Fprintf(&b, "        \"example\": %s\n", jsonString(p.Example))
				b.WriteString("      }")
				if i < len(e.Placeholders)-1 {
					b.WriteString(",")
				}
				b.WriteString("\n")
			}
			b.WriteString("    }\n")
		} else {
			b.WriteString("\n")
		}
		b.WriteString("  }")
	}
	b.WriteString("\n}\n")

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create resource directory: %w", err)
	}
	if err := os.WriteFile(path, b.Bytes(), 0644); err != nil {
		return fmt.Errorf("write resource file: %w", err)
	}
	return nil
}

func jsonString(s string) string {
	out, _ := json.Marshal(s)
	return string(out)
}
