package gen

import (
	"regexp"

	"github.com/coreos/go-semver/semver"

	"github.com/wippyai/trivec/errors"
)

// FormatVersion is the version of the generated file format this package
// emits. Bump the major on any change that alters the emitted API surface.
const FormatVersion = "1.0.0"

var formatRe = regexp.MustCompile(`(?m)^// format: (\S+)$`)

// CheckCompat reports whether this generator may overwrite an existing
// generated file. A file whose format major is newer than FormatVersion is
// refused. Files without a format header pass, so hand-started or
// pre-version files can always be regenerated over.
func CheckCompat(existing []byte) error {
	m := formatRe.FindSubmatch(existing)
	if m == nil {
		return nil
	}

	found, err := semver.NewVersion(string(m[1]))
	if err != nil {
		return errors.New(errors.PhaseGenerate, errors.KindIncompatible).
			Value(string(m[1])).
			Cause(err).
			Detail("existing file carries an unparsable format version %q", string(m[1])).
			Build()
	}

	emit := semver.New(FormatVersion)
	if found.Major > emit.Major {
		return errors.Incompatible(found.String(), FormatVersion)
	}
	return nil
}
