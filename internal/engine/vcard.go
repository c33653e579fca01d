package engine

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-dob/internal/config"
)

// ReadContacts decodes a vCard stream and returns every card carrying a parsable BDAY.
// Malformed cards and unparsable dates are skipped and logged.
func ReadContacts(ctx context.Context, r io.Reader) ([]Contact, error) {
	decoder := vcard.NewDecoder(r)
	var contacts []Contact

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Log error but continue to next card to maximize data recovery
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyError, err)
			continue
		}

		bday := card.Get(config.VCardBDAY)
		if bday == nil || bday.Value == "" {
			continue
		}

		birthDate, yearKnown, err := parseDate(bday.Value)
		if err != nil {
			slog.Debug(config.MsgSkippedDate,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyValue, bday.Value)
			continue
		}

		// Name Strategy: FN (Formatted) > N (Structured) > Fallback
		name := config.FallbackName
		if fn := card.Get(config.VCardFN); fn != nil && fn.Value != "" {
			name = fn.Value
		} else if n := card.Get(config.VCardN); n != nil && n.Value != "" {
			name = n.Value
		}

		triple := DateTriple{Day: birthDate.Day(), Month: int(birthDate.Month())}
		if yearKnown {
			triple.Year = birthDate.Year()
		}

		contacts = append(contacts, Contact{
			UID:       contactUID(name, birthDate),
			Name:      name,
			Birth:     triple,
			YearKnown: yearKnown,
		})
	}

	slog.Debug(config.LogMsgImported,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyCount, len(contacts))
	return contacts, nil
}

// FirstWithYear returns the first contact whose birth year is known.
func FirstWithYear(contacts []Contact) (Contact, error) {
	for _, c := range contacts {
		if c.YearKnown {
			return c, nil
		}
	}
	return Contact{}, errors.New(config.ErrNoBirthDate)
}

// contactUID is deterministic for stability across imports.
func contactUID(name string, birthDate time.Time) string {
	input := fmt.Sprintf(config.FormatHashInput, name, birthDate.Format(time.RFC3339), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf("%x", hash[:config.UIDHashLength])
}

// parseDate handles various vCard date formats.
func parseDate(value string) (time.Time, bool, error) {
	// Full dates (Year known)
	formatsWithYear := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		config.DateFormatRFC3339,
		config.DateFormatFullT,
	}

	for _, f := range formatsWithYear {
		if t, err := time.Parse(f, value); err == nil {
			return t, true, nil
		}
	}

	// Truncated dates (Year unknown) - vCard specific.
	// time.Parse defaults the year to 0, a leap year, so --02-29 survives.
	formatsWithoutYear := []string{config.DateFormatNoYearD, config.DateFormatNoYearB}
	for _, f := range formatsWithoutYear {
		if t, err := time.Parse(f, value); err == nil {
			return t, false, nil
		}
	}

	return time.Time{}, false, fmt.Errorf("%s: %q", config.ErrDateParse, value)
}
