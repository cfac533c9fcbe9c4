// Package config defines the frozen configuration value consumed by the
// core. Loading it from YAML, environment variables, or flags is an
// external collaborator's responsibility (see SPEC_FULL.md §1, §6); this
// package only defines the shape and its defaults.
package config

import "time"

// Config is the frozen configuration the core reads at session-manager
// construction time. It is never mutated afterwards; the core treats it as
// an immutable value shared across sessions, the same way mapping tables
// are shared (SPEC_FULL.md §3 "Mapping tables").
type Config struct {
	// BindAddress is the local address the Bedrock/RakNet transport listens
	// on. Consumed, not bound, by this package.
	BindAddress string
	// BindPort is the local UDP port for the Bedrock/RakNet transport.
	BindPort uint16
	// RemoteAddress is the Java-edition server this proxy connects to on
	// behalf of each session.
	RemoteAddress string
	// RemotePort is the Java-edition server's TCP port.
	RemotePort uint16
	// MaxPlayers bounds the number of concurrent live sessions. Admission
	// beyond this is refused with sessionmanager.ErrServerFull
	// (disconnect.ReasonServerFull).
	MaxPlayers int
	// ThreadPoolSize is the number of OS threads the cooperative runtime
	// multiplexes sessions across. Zero means "use GOMAXPROCS".
	ThreadPoolSize int
	// PingPassthrough controls whether unconnected pings are relayed to the
	// remote Java server for MOTD purposes. The ping-passthrough mechanism
	// itself lives outside the core (SPEC_FULL.md §1); this flag is only
	// read by that external collaborator.
	PingPassthrough bool
	// OnlineMode controls whether Bedrock logins are required to carry a
	// verified identity chain. The core never talks to the identity
	// provider itself beyond forwarding a token (spec.md Non-goals).
	OnlineMode bool
	// AuthServerURL is the identity provider endpoint forwarded to, never
	// called directly by this package.
	AuthServerURL string
	// DefaultLocale is used when a session's Bedrock login does not supply
	// one.
	DefaultLocale string
	// ViewDistance is the default chunk view distance, in chunks, applied
	// to new sessions before the client requests otherwise.
	ViewDistance int32

	// FormResponseTimeout bounds how long a pending form slot
	// (SPEC_FULL.md §4.4 "Form protocol") waits for a Bedrock response
	// before being completed with a cancellation sentinel.
	FormResponseTimeout time.Duration
	// DisconnectDrainTimeout bounds how long a disconnecting session waits
	// for its outbound buffers to flush before the transports are closed
	// unconditionally (SPEC_FULL.md §5 "Cancellation and timeouts").
	DisconnectDrainTimeout time.Duration
	// ShutdownDrainTimeout bounds how long the session manager waits for
	// all sessions to drain during shutdown before abandoning the rest.
	ShutdownDrainTimeout time.Duration
	// TickInterval is the scheduler pulse period. One game tick is 50ms;
	// tests may shrink this.
	TickInterval time.Duration
	// OutboundBackpressureLimit is the number of consecutive saturated
	// sends tolerated before a session is disconnected with
	// disconnect.ReasonBackpressure.
	OutboundBackpressureLimit int
	// MinCodecVersion and MaxCodecVersion bound the Bedrock codec versions
	// this proxy accepts (SPEC_FULL.md §4.2, §6).
	MinCodecVersion int32
	MaxCodecVersion int32
}

// Default returns a Config populated with the defaults named throughout
// SPEC_FULL.md ("default: CPU count", "default 2s", "default 60s", "one
// game tick").
func Default() Config {
	return Config{
		MaxPlayers:                 20,
		ThreadPoolSize:             0,
		DefaultLocale:              "en_US",
		ViewDistance:               8,
		FormResponseTimeout:        60 * time.Second,
		DisconnectDrainTimeout:     2 * time.Second,
		ShutdownDrainTimeout:       10 * time.Second,
		TickInterval:               50 * time.Millisecond,
		OutboundBackpressureLimit:  64,
	}
}
