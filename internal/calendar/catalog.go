package calendar

import "time"

var thanksgiving = NthWeekday(time.November, time.Thursday, 4)

// builtinHolidays is the default catalog. Order breaks ties in Next.
var builtinHolidays = [...]Holiday{
	{Name: "New Year", When: FixedDate{time.January, 1}, Emoji: "🎉", Greeting: "Happy New Year!"},
	{Name: "Valentine's Day", When: FixedDate{time.February, 14}, Emoji: "❤️", Greeting: "Happy Valentine's Day!"},
	{Name: "International Women's Day", When: FixedDate{time.March, 8}, Emoji: "🌷", Greeting: "Happy Women's Day!"},
	{Name: "April Fools' Day", When: FixedDate{time.April, 1}, Emoji: "🤡", Greeting: "Happy April Fools'!"},
	{Name: "Earth Day", When: FixedDate{time.April, 22}, Emoji: "🌍", Greeting: "Happy Earth Day!"},
	{Name: "Labor Day", When: FixedDate{time.May, 1}, Emoji: "🛠️", Greeting: "Happy Labor Day!"},
	{Name: "Mother's Day", When: ComputedDate{NthWeekday(time.May, time.Sunday, 2)}, Emoji: "💐", Greeting: "Happy Mother's Day!"},
	{Name: "Father's Day", When: ComputedDate{NthWeekday(time.June, time.Sunday, 3)}, Emoji: "👔", Greeting: "Happy Father's Day!"},
	{Name: "Easter", When: ComputedDate{Easter}, Emoji: "🐣", Greeting: "Happy Easter!"},
	{Name: "Halloween", When: FixedDate{time.October, 31}, Emoji: "🎃", Greeting: "Happy Halloween!"},
	{Name: "Singles Day", When: FixedDate{time.November, 11}, Emoji: "🛍️", Greeting: "Happy Singles Day!"},
	{Name: "Thanksgiving (US)", When: ComputedDate{thanksgiving}, Emoji: "🦃", Greeting: "Happy Thanksgiving!"},
	{Name: "Black Friday", When: ComputedDate{Offset(thanksgiving, 1)}, Emoji: "🛍️", Greeting: "Happy Black Friday!"},
	{Name: "Christmas", When: FixedDate{time.December, 25}, Emoji: "🎄", Greeting: "Merry Christmas!"},
}

// Builtin returns a copy of the built-in holiday catalog
func Builtin() []Holiday {
	out := make([]Holiday, len(builtinHolidays))
	copy(out, builtinHolidays[:])
	return out
}

// BuiltinSource serves the built-in catalog
type BuiltinSource struct{}

// Name implements Source
func (BuiltinSource) Name() string { return "builtin" }

// Holidays implements Source
func (BuiltinSource) Holidays() []Holiday { return Builtin() }
