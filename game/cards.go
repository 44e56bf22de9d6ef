package game

// cardTable is the static reference table of every development card. A card's cost is
// spelled out by its code: pairs of count and colour letter (B black, r red, g green,
// b blue, w white).
var cardTable = []cardEntry{
	{"1g1w1r1b", Black, 1, 0},
	{"1g1w1r2b", Black, 1, 0},
	{"2b1r2w", Black, 1, 0},
	{"2b2g3w", Black, 2, 1},
	{"2g1r", Black, 1, 0},
	{"2w2g", Black, 1, 0},
	{"3g", Black, 1, 0},
	{"3g2B3w", Black, 2, 1},
	{"3r1B1g", Black, 1, 0},
	{"4b", Black, 1, 1},
	{"4g2r1b", Black, 2, 2},
	{"5g3r", Black, 2, 2},
	{"5g3w3r3b", Black, 3, 3},
	{"5w", Black, 2, 2},
	{"6B", Black, 2, 3},
	{"6r3B3g", Black, 3, 4},
	{"7r", Black, 3, 4},
	{"7r3B", Black, 3, 5},
	{"1r1w1B1g", Blue, 1, 0},
	{"1r4B2w", Blue, 2, 2},
	{"1w2B", Blue, 1, 0},
	{"2g2B", Blue, 1, 0},
	{"2g2r1w", Blue, 1, 0},
	{"2g3r2b", Blue, 2, 1},
	{"2r1w1B1g", Blue, 1, 0},
	{"3B", Blue, 1, 0},
	{"3b3B6w", Blue, 3, 4},
	{"3g1r1b", Blue, 1, 0},
	{"3g3B2b", Blue, 2, 1},
	{"3r3w5B3g", Blue, 3, 3},
	{"4r", Blue, 1, 1},
	{"5b", Blue, 2, 2},
	{"5w3b", Blue, 2, 2},
	{"6b", Blue, 2, 3},
	{"7w", Blue, 3, 4},
	{"7w3b", Blue, 3, 5},
	{"1r1w1B1b", Green, 1, 0},
	{"1r1w2B1b", Green, 1, 0},
	{"2b1B4w", Green, 2, 2},
	{"2b2r", Green, 1, 0},
	{"2g3r3w", Green, 2, 1},
	{"2r2B1b", Green, 1, 0},
	{"2w1b", Green, 1, 0},
	{"3b1g1w", Green, 1, 0},
	{"3b2B2w", Green, 2, 1},
	{"3r", Green, 1, 0},
	{"3r5w3B3b", Green, 3, 3},
	{"4B", Green, 1, 1},
	{"5b3g", Green, 2, 2},
	{"5g", Green, 2, 2},
	{"6b3g3w", Green, 3, 4},
	{"6g", Green, 2, 3},
	{"7b", Green, 3, 4},
	{"7b3g", Green, 3, 5},
	{"1g1w1B1b", Red, 1, 0},
	{"1g2B2w", Red, 1, 0},
	{"1g2w1B1b", Red, 1, 0},
	{"1r3B1w", Red, 1, 0},
	{"2b1g", Red, 1, 0},
	{"2r3B2w", Red, 2, 1},
	{"2r3B3b", Red, 2, 1},
	{"2w2r", Red, 1, 0},
	{"3g3w3B5b", Red, 3, 3},
	{"3w", Red, 1, 0},
	{"3w5B", Red, 2, 2},
	{"4b2g1w", Red, 2, 2},
	{"4w", Red, 1, 1},
	{"5B", Red, 2, 2},
	{"6g3r3b", Red, 3, 4},
	{"6r", Red, 2, 3},
	{"7g", Red, 3, 4},
	{"7g3r", Red, 3, 5},
	{"1b1B3w", White, 1, 0},
	{"1r1b1B1g", White, 1, 0},
	{"1r1b1B2g", White, 1, 0},
	{"2b2B", White, 1, 0},
	{"2g1B2b", White, 1, 0},
	{"2r1B", White, 1, 0},
	{"2r2B3g", White, 2, 1},
	{"3b", White, 1, 0},
	{"3b3r2w", White, 2, 1},
	{"3r6B3w", White, 3, 4},
	{"3w7B", White, 3, 5},
	{"4g", White, 1, 1},
	{"4r2B1g", White, 2, 2},
	{"5r", White, 2, 2},
	{"5r3B", White, 2, 2},
	{"5r3b3B3g", White, 3, 3},
	{"6w", White, 2, 3},
	{"7B", White, 3, 4},
}

var nobleTable = []string{
	"4g4r", "3w3r3B", "3b3g3r", "3w3b3g", "4w4b",
	"4w4B", "3w3b3B", "4r4B", "4b4g", "3g3r3B",
}
