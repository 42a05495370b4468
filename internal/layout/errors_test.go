package layout

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Error(t *testing.T) {
	type tc struct {
		err  *Error
		want string
	}

	tests := map[string]tc{
		"invalid unit": {
			err:  &Error{Kind: KindInvalidUnit, Op: "SetDimension", Property: "width", Unit: UnitFr},
			want: "layout: SetDimension: width: invalid unit fr",
		},
		"invalid numeric with detail": {
			err:  &Error{Kind: KindInvalidNumeric, Op: "SetFlexGrow", Property: "flex-grow", Value: -1, Detail: "negative"},
			want: "layout: SetFlexGrow: flex-grow: invalid numeric value -1 (negative)",
		},
		"not found with node": {
			err:  &Error{Kind: KindNotFound, Op: "Layout", Node: NodeID{index: 3, gen: 2}},
			want: "layout: Layout: not found node(3.2)",
		},
		"null handle": {
			err:  &Error{Kind: KindNullHandle, Op: "AddChild"},
			want: "layout: AddChild: null handle",
		},
		"kind only": {
			err:  &Error{Kind: KindInvalidHierarchy},
			want: "layout: invalid hierarchy",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	err := fmt.Errorf("configuring: %w", &Error{Kind: KindInvalidUnit, Op: "SetDimension"})

	assert.True(t, errors.Is(err, ErrInvalidUnit))
	assert.False(t, errors.Is(err, ErrInvalidNumeric))
	assert.Equal(t, KindInvalidUnit, KindOf(err))
	assert.Equal(t, ErrorKind(0), KindOf(errors.New("other")))
	assert.Equal(t, "ErrorKind(42)", ErrorKind(42).String())
}
