package util

import (
	"math/rand"
)

var adjectives = []string{
	"Fast", "Slow", "Quick", "Speedy", "Trotting", "Weaving", "Waiving", "Gracious", "Healthy", "Happy", "Funny",
	"Red", "Blue", "Green", "Orange", "Purple", "Fuzzy", "Smiling", "Tall", "Grand", "Ultimate", "Prime",
	"Alpha", "Growling", "Slithering", "Swimming", "Flying", "Jumping", "Running", "Charging", "Shooting", "Bouncing",
	"Bounding", "Leaping",
}

var animals = []string{
	"Dog", "Cat", "Mouse", "Alligator", "Crocodile", "Shark", "Hippo", "Giraffe", "Antelope", "Lion", "Tiger",
	"Bear", "Muskrat", "Otter", "Dolphin", "Porcupine", "Gerbil", "Hedgehog", "Snake", "Lizard", "Chipmunk",
	"Bird", "Dinosaur", "Okapi", "Eagle", "Mandrill", "Bonobo", "Wolf", "Fox", "Armadillo", "Rhino", "Anteater",
	"Reindeer", "Deer", "Panda",
}

// GetRandomRoomName returns a random alphanumeric room name by combining an adjective with an animal
// It is safe to call from multiple goroutines
func GetRandomRoomName() string {
	return RandomRoomName(rand.Intn) // nolint:gosec
}

// RandomRoomName is like GetRandomRoomName, but picks words with intn
func RandomRoomName(intn func(n int) int) string {
	adjectivesIndex := intn(len(adjectives))
	animalsIndex := intn(len(animals))

	return adjectives[adjectivesIndex] + animals[animalsIndex]
}
