package tiers

type Tier uint8

const (
	Short Tier = iota + 1
	Long
)

// Brief aliases Short and must not be reported separately.
const Brief = Short
