package builder

import (
	"grabarr/internal/domain/consts"
	"grabarr/internal/models"
)

// Network tier parameters. Conservative halves concurrency, raises the
// retry counters, and adds a socket timeout; the fetcher's own fragment
// retries absorb transient flakiness below either tier.
const (
	reliableRetries     = 10
	conservativeRetries = 25
	socketTimeoutSecs   = 30
)

// ApplyTier stamps network-reliability parameters onto a spec. The tier
// is chosen by a switch, never auto-detected.
func ApplyTier(spec *models.InvocationSpec, tier consts.NetTier, s models.Settings) {
	frags := s.VideoFragments
	buffer := s.VideoBufferSize
	if spec.Kind == consts.KindAudioOnly {
		frags = s.AudioFragments
		buffer = s.AudioBufferSize
	}
	if frags < 1 {
		frags = 1
	}

	spec.Tier = tier
	spec.BufferSize = buffer

	switch tier {
	case consts.TierConservative:
		spec.ConcurrentFragments = max(frags/2, 1)
		spec.Retries = conservativeRetries
		spec.FragmentRetries = conservativeRetries
		spec.SocketTimeoutSecs = socketTimeoutSecs
	default:
		spec.ConcurrentFragments = frags
		spec.Retries = reliableRetries
		spec.FragmentRetries = reliableRetries
		spec.SocketTimeoutSecs = 0
	}
}

// Conservative reshapes an already-built spec to the conservative tier,
// halving its current concurrency rather than re-reading settings.
func Conservative(spec *models.InvocationSpec) {
	spec.Tier = consts.TierConservative
	spec.ConcurrentFragments = max(spec.ConcurrentFragments/2, 1)
	spec.Retries = conservativeRetries
	spec.FragmentRetries = conservativeRetries
	spec.SocketTimeoutSecs = socketTimeoutSecs
}
