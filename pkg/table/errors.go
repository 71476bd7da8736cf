package table

import (
	"fmt"
	"strings"

	"github.com/gnames/cc0photos/pkg/errcode"
	"github.com/gnames/gn"
)

// SchemaError creates an error for a table that lacks expected columns.
func SchemaError(missing, header []string) error {
	msg := `Table does not have expected columns

<em>Missing columns:</em> %s
<em>Found columns:</em> %s`

	vars := []any{strings.Join(missing, ", "), strings.Join(header, ", ")}

	return &gn.Error{
		Code: errcode.SchemaError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("missing columns: %s", strings.Join(missing, ", ")),
	}
}
