package export

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/JaimeStill/pagegen/internal/landing"
)

// ShareVersion is the current payload format version.
const ShareVersion = 1

// SharedPage is the decoded form of a share payload.
type SharedPage struct {
	Version  int                    `json:"v"`
	Sections []landing.PageSection  `json:"sections"`
	Theme    landing.ThemeConfig    `json:"theme"`
	Form     landing.FormAttributes `json:"form"`
}

// PayloadSharer encodes pages as versioned JSON in unpadded base64url.
type PayloadSharer struct{}

func NewSharer() *PayloadSharer {
	return &PayloadSharer{}
}

func (PayloadSharer) Share(sections []landing.PageSection, theme landing.ThemeConfig, form landing.FormAttributes) (string, error) {
	data, err := json.Marshal(SharedPage{
		Version:  ShareVersion,
		Sections: sections,
		Theme:    theme,
		Form:     form,
	})
	if err != nil {
		return "", fmt.Errorf("encode share payload: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// Decode reverses Share.
func Decode(payload string) (*SharedPage, error) {
	data, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	var page SharedPage
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	if page.Version != ShareVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidPayload, page.Version)
	}
	if err := landing.ValidateSections(page.Sections); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	return &page, nil
}
