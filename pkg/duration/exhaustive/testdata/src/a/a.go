package a

import "tiers"

func complete(t tiers.Tier) int {
	switch t {
	case tiers.Short:
		return 1
	case tiers.Long:
		return 2
	}
	return 0
}

func withDefault(t tiers.Tier) int {
	switch t {
	case tiers.Short:
		return 1
	default:
		return 0
	}
}

func missingLong(t tiers.Tier) int {
	switch t { // want "missing cases in switch of type tiers.Tier: Long"
	case tiers.Short:
		return 1
	}
	return 0
}

func missingBoth(t tiers.Tier) int {
	switch t { // want "missing cases in switch of type tiers.Tier: Short, Long"
	}
	return 0
}

func viaAlias(t tiers.Tier) int {
	switch t {
	case tiers.Brief, tiers.Long:
		return 1
	}
	return 0
}

func untagged(t tiers.Tier) int {
	switch {
	case t == tiers.Short:
		return 1
	}
	return 0
}

func otherType(n int) int {
	switch n {
	case 1:
		return 1
	}
	return 0
}
