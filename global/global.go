package global

const Name = "heaptree"

const Purpose = "Prints a random binary min-heap as a tree."
