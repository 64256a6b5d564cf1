package mapping

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig matches every validation failure.
var ErrInvalidConfig = errors.New("invalid mapping configuration")

// Validate checks value ranges; it does not look at any model.
func Validate(f *File) error {
	if f == nil {
		return fmt.Errorf("%w: mapping file is nil", ErrInvalidConfig)
	}

	var errs []error

	if f.Threshold != nil && (*f.Threshold < 0 || *f.Threshold > 1) {
		errs = append(errs, fmt.Errorf("%w: threshold %v outside [0, 1]", ErrInvalidConfig, *f.Threshold))
	}

	if f.Precision != nil && *f.Precision < 0 {
		errs = append(errs, fmt.Errorf("%w: negative precision %d", ErrInvalidConfig, *f.Precision))
	}

	if f.Collections != "" && !f.Collections.Valid() {
		errs = append(errs, fmt.Errorf("%w: unknown collection style %q (want %q or %q)",
			ErrInvalidConfig, f.Collections, CollectionsParallel, CollectionsObjects))
	}

	for i, u := range f.Units {
		switch {
		case u.From == "" || u.To == "":
			errs = append(errs, fmt.Errorf("%w: units[%d]: from and to are required", ErrInvalidConfig, i))
		case u.Factor <= 0:
			errs = append(errs, fmt.Errorf("%w: units[%d] %s -> %s: factor must be positive",
				ErrInvalidConfig, i, u.From, u.To))
		}
	}

	for src, tgt := range f.Overrides {
		if src == "" || tgt == "" {
			errs = append(errs, fmt.Errorf("%w: override %q -> %q has an empty side", ErrInvalidConfig, src, tgt))
		}
	}

	return errors.Join(errs...)
}
