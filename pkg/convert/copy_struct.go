package convert

import (
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
)

// StructAssign copies same-named fields from src into dst.
// dst must be a pointer to a struct.
func StructAssign(src any, dst any) error {
	if err := copier.Copy(dst, src); err != nil {
		return errors.Wrap(err, "copy struct failed")
	}
	return nil
}
