package validator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// description accumulates name=value pairs in the order they are added.
type description struct {
	name string
	args []string
}

func describe(name string) *description {
	return &description{name: name}
}

func (d *description) add(key, value string) *description {
	d.args = append(d.args, key+"="+value)
	return d
}

// required appends required=False when the validator accepts nil.
func (d *description) required(required bool) *description {
	if !required {
		d.add("required", formatBool(false))
	}
	return d
}

func (d *description) String() string {
	return d.name + "(" + strings.Join(d.args, ", ") + ")"
}

func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "math.Inf(1)"
	case math.IsInf(f, -1):
		return "math.Inf(-1)"
	case math.IsNaN(f):
		return "math.NaN()"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

func formatDuration(d time.Duration) string {
	return d.String()
}

// formatKey renders a map key or a structure field name for messages and
// descriptions.
func formatKey(k any) string {
	if s, ok := k.(string); ok {
		return strconv.Quote(s)
	}
	return fmt.Sprintf("%v", k)
}

func describeValidator(v Validator) string {
	if v == nil {
		return "nil"
	}
	return v.Describe()
}
