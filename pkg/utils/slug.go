package utils

import "math/rand"

const slugChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// SlugLength is short on purpose: slugs are typed and read aloud. Collisions
// are handled by retrying the insert.
const SlugLength = 5

func GenerateSlug() string {
	b := make([]byte, SlugLength)
	for i := range b {
		b[i] = slugChars[rand.Intn(len(slugChars))]
	}
	return string(b)
}
