package util

import (
	"fmt"
	"math/rand"
	"strings"
)

const alpha = "abcdefghjklmnopqrstuvwxyz"

// RandomInt generates a random integer between min and max.
func RandomInt(min, max int64) int64 {
	if max < min {
		min, max = max, min
	}
	return rand.Int63n(max-min+1) + min
}

// RandomString generates a random string of length n.
func RandomString(n int) string {
	var sb strings.Builder
	k := len(alpha)

	for range n {
		c := alpha[rand.Intn(k)]
		sb.WriteByte(c)
	}

	return sb.String()
}

// RandomName generates a random name which can be used for anything.
func RandomName() string {
	return RandomString(6)
}

// RandomEmail generates a random email.
func RandomEmail() string {
	return RandomString(7) + "@" + RandomString(6) + ".com"
}

// RandomSkill generates a random skill name.
func RandomSkill() string {
	options := []string{"Go", "TypeScript", "React", "PostgreSQL", "Docker", "Kubernetes"}
	return options[rand.Intn(len(options))]
}

// RandomRating generates a random skill rating between 1 and 5.
func RandomRating() int {
	return int(RandomInt(1, 5))
}

// RandomURL generates a random https URL.
func RandomURL() string {
	return fmt.Sprintf("https://%s.com/%s", RandomString(8), RandomString(6))
}
