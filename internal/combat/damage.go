package combat

const (
	varianceMin   = 0.9
	varianceRange = 0.2
)

// BaseDamage is the damage of a plain attack before variance. It is never
// below 1.
func BaseDamage(str, vit int) int {
	return max(1, str*2-vit)
}

// Vary scales dmg by a uniform factor in [0.9, 1.1), truncating, and keeps the
// result at least 1.
func Vary(rng Rand, dmg int) int {
	return max(1, int(float64(dmg)*(varianceMin+rng.Float64()*varianceRange)))
}

var damageMessages = []struct {
	maxDamage int
	verb3rd   string // "{attacker} {verb} you"
}{
	{0, "misses"},
	{2, "barely scratches"},
	{4, "tickles"},
	{6, "bruises"},
	{10, "hits"},
	{14, "strikes"},
	{19, "pummels"},
	{24, "thrashes"},
	{30, "mauls"},
	{40, "decimates"},
	{50, "devastates"},
	{65, "obliterates"},
	{80, "annihilates"},
}

// DamageVerb returns the 3rd person verb for a damage amount.
func DamageVerb(damage int) string {
	for _, msg := range damageMessages {
		if damage <= msg.maxDamage {
			return msg.verb3rd
		}
	}
	return "does UNSPEAKABLE things to"
}
