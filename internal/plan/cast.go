package plan

import (
	"strings"

	"samm-mapper/internal/common"
	"samm-mapper/internal/model"
)

// Family groups data types that convert the same way.
type Family int

const (
	FamilyUnknown Family = iota
	FamilyNumeric
	FamilyText
	FamilyTemporal
	FamilyBoolean
	FamilyComposite
)

// String returns a human-readable family name.
func (f Family) String() string {
	switch f {
	case FamilyNumeric:
		return "numeric"
	case FamilyText:
		return "text"
	case FamilyTemporal:
		return "temporal"
	case FamilyBoolean:
		return "boolean"
	case FamilyComposite:
		return model.CompositeType
	default:
		return common.UnknownStr
	}
}

// Cast operators of the generated expression language.
const (
	OpNumber  = "$number"
	OpString  = "$string"
	OpBoolean = "$boolean"
)

var families = map[string]Family{
	"decimal":            FamilyNumeric,
	"integer":            FamilyNumeric,
	"int":                FamilyNumeric,
	"long":               FamilyNumeric,
	"short":              FamilyNumeric,
	"byte":               FamilyNumeric,
	"float":              FamilyNumeric,
	"double":             FamilyNumeric,
	"nonnegativeinteger": FamilyNumeric,
	"positiveinteger":    FamilyNumeric,
	"nonpositiveinteger": FamilyNumeric,
	"negativeinteger":    FamilyNumeric,
	"unsignedlong":       FamilyNumeric,
	"unsignedint":        FamilyNumeric,
	"unsignedshort":      FamilyNumeric,
	"unsignedbyte":       FamilyNumeric,

	"string":           FamilyText,
	"langstring":       FamilyText,
	"normalizedstring": FamilyText,
	"token":            FamilyText,
	"anyuri":           FamilyText,
	"curie":            FamilyText,
	"hexbinary":        FamilyText,
	"base64binary":     FamilyText,

	"date":              FamilyTemporal,
	"datetime":          FamilyTemporal,
	"datetimestamp":     FamilyTemporal,
	"time":              FamilyTemporal,
	"gyear":             FamilyTemporal,
	"gmonth":            FamilyTemporal,
	"gday":              FamilyTemporal,
	"gyearmonth":        FamilyTemporal,
	"gmonthday":         FamilyTemporal,
	"duration":          FamilyTemporal,
	"daytimeduration":   FamilyTemporal,
	"yearmonthduration": FamilyTemporal,

	"boolean": FamilyBoolean,

	model.CompositeType: FamilyComposite,
}

// FamilyOf classifies a data type local name, ignoring case.
func FamilyOf(dataType string) Family {
	return families[strings.ToLower(dataType)]
}

// textLike reports whether values of f are JSON strings.
func textLike(f Family) bool {
	return f == FamilyText || f == FamilyTemporal
}

// CastOperator returns the operator converting a value of type from into
// type to. It reports false when no rule exists.
//
// Rules:
//   - primitive -> text: $string
//   - numeric, text, boolean -> numeric: $number
//   - text, numeric -> boolean: $boolean
//   - text-like <-> text-like: $string
func CastOperator(from, to string) (string, bool) {
	ff, tf := FamilyOf(from), FamilyOf(to)

	if ff == FamilyComposite || tf == FamilyComposite {
		return "", false
	}

	switch {
	case tf == FamilyText:
		return OpString, true
	case tf == FamilyNumeric && (ff == FamilyNumeric || ff == FamilyText || ff == FamilyBoolean):
		return OpNumber, true
	case tf == FamilyBoolean && (ff == FamilyText || ff == FamilyNumeric):
		return OpBoolean, true
	case textLike(tf) && textLike(ff):
		return OpString, true
	default:
		return "", false
	}
}
