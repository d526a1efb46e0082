package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	mrand "math/rand"
	"net/url"
	"regexp"
	"strings"
)

// DefaultAvatarBaseURL is the external avatar rendering service.
const DefaultAvatarBaseURL = "https://api.dicebear.com/7.x"

const (
	avatarSize   = 200
	avatarRadius = 50
)

var ErrInvalidEmail = errors.New("invalid email address")

// avatarStyles is the catalog of rendering styles offered by the service.
var avatarStyles = []string{
	"adventurer",
	"avataaars",
	"big-ears",
	"bottts",
	"fun-emoji",
	"icons",
	"lorelei",
	"micah",
	"miniavs",
	"pixel-art",
	"thumbs",
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AvatarService builds avatar URLs against an external rendering service.
type AvatarService struct {
	baseURL string
}

// NewAvatarService creates a new AvatarService. An empty baseURL falls back
// to the default rendering service.
func NewAvatarService(baseURL string) *AvatarService {
	if baseURL == "" {
		baseURL = DefaultAvatarBaseURL
	}
	return &AvatarService{baseURL: strings.TrimRight(baseURL, "/")}
}

// Assign builds an avatar URL for the given email. The style is picked
// uniformly at random from the catalog, so repeated calls for the same email
// yield different avatars.
func (s *AvatarService) Assign(email string) (string, error) {
	email = strings.TrimSpace(email)
	if !emailPattern.MatchString(email) {
		return "", ErrInvalidEmail
	}

	style := avatarStyles[mrand.Intn(len(avatarStyles))]

	seed, err := scrambleSeed(email)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s/svg?seed=%s&size=%d&radius=%d",
		s.baseURL, style, url.QueryEscape(seed), avatarSize, avatarRadius), nil
}

// Tag returns the embeddable markup for an avatar, with the username as
// accessible alt text. Pure formatting, no I/O.
func (s *AvatarService) Tag(username, avatarURL string) string {
	return fmt.Sprintf(`<img src=%q alt=%q>`, avatarURL, username)
}

// scrambleSeed replaces the '@' and every '.' in the email with independent
// random tokens.
func scrambleSeed(email string) (string, error) {
	var b strings.Builder
	for _, r := range email {
		if r == '@' || r == '.' {
			token, err := randomToken()
			if err != nil {
				return "", err
			}
			b.WriteString(token)
			continue
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}

func randomToken() (string, error) {
	bytes := make([]byte, 2)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}
