package encounters

// defaultClues are one-sentence hints about a past event, each beginning
// with "There is a...".
var defaultClues = []string{
	"There is a smudge of dried ink on the underside of the table.",
	"There is a faint scorch on the carpet as if something hot had been placed there.",
	"There is a single muddy footprint pressed into the rug's fringe.",
	"There is a scrap of paper folded three times and tucked into the baseboard.",
	"There is a whisper of perfume that doesn't match any occupant's clothing.",
	"There is a hidden latch behind the bookshelf, its edges recently worn.",
	"There is a streak of crimson along the windowsill that has dried a while.",
	"There is a child's toy, intact but abandoned, under the radiator.",
	"There is a calendar with one day circled and the ink smudged by a trembling hand.",
	"There is a loose floorboard with a small hollow stamped into dust beneath it.",
}

// defaultSenses are sensory impressions of the room the player stands in.
var defaultSenses = []string{
	"You see torchlight pooling along the flagstones, though no torch burns nearby.",
	"You hear the slow turning of gears somewhere deep in the wall, patient and eternal.",
	"You smell cold iron mixed with old beeswax and something floral that has lingered for years.",
	"You feel the carved stone hum faintly beneath your fingertips, as if remembering a name.",
	"You sense the room holding its breath, a quiet pressure that makes your heartbeat louder.",
	"You see motes of dust dancing in a shaft of moonlight that slices through a narrow slit.",
	"You hear a draped curtain stir though the air is still, like the echo of a passing cloak.",
	"You smell smoke and melted wax threaded through the tapestry's weave.",
	"You feel a chill run along the baseboard as if footsteps passed by moments ago.",
	"You see a shadow pause in the corner, not quite matching the shape of anything known.",
	"You hear a faint, off-key melody humming from behind a sealed door.",
	"You sense something familiar and foreign at once, a memory that belongs to someone else.",
}
