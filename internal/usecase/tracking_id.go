package usecase

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"
)

const trackingIDPrefix = "PRCL"

// trackingIDPattern is the public format of tracking ids: PRCL-YYYYMMDD-XXXXXX.
var trackingIDPattern = regexp.MustCompile(`^PRCL-\d{8}-[0-9A-F]{6}$`)

// TrackingIDFunc issues a new tracking id dated at now.
type TrackingIDFunc func(now time.Time) (string, error)

// NewTrackingID builds a tracking id for the UTC date of now with a 6 hex digit
// suffix read from r.
func NewTrackingID(now time.Time, r io.Reader) (string, error) {
	var suffix [3]byte
	if _, err := io.ReadFull(r, suffix[:]); err != nil {
		return "", fmt.Errorf("read tracking id entropy: %w", err)
	}
	return fmt.Sprintf("%s-%s-%s",
		trackingIDPrefix,
		now.UTC().Format("20060102"),
		strings.ToUpper(hex.EncodeToString(suffix[:])),
	), nil
}

func defaultTrackingID(now time.Time) (string, error) {
	return NewTrackingID(now, rand.Reader)
}

func IsTrackingID(s string) bool {
	return trackingIDPattern.MatchString(s)
}
