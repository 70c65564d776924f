package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/silkyway/silk/internal/core/sdkerr"
)

// success prints a result in the machine envelope, or as flat key/value
// lines with --human.
func success(data map[string]any) {
	if humanOutput {
		keys := make([]string, 0, len(data))
		for k := range data {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			v := data[k]
			switch v.(type) {
			case string, bool, int, int64, uint64, float64:
				fmt.Printf("%s: %v\n", k, v)
			default:
				encoded, _ := json.MarshalIndent(v, "  ", "  ")
				fmt.Printf("%s:\n  %s\n", k, encoded)
			}
		}
		return
	}
	out, _ := json.Marshal(map[string]any{"ok": true, "data": data})
	fmt.Println(string(out))
}

// fail prints a domain error and exits. Every command failure funnels
// through here, so the process always emits exactly one error envelope.
func fail(err error) {
	e := sdkerr.Wrap(err)
	if humanOutput {
		fmt.Printf("Error [%s]: %s\n", e.Code, e.Message)
	} else {
		out, _ := json.Marshal(map[string]any{"ok": false, "error": e.Code, "message": e.Message})
		fmt.Println(string(out))
	}
	os.Exit(1)
}
