package translators

import (
	"context"

	"github.com/crossbridge/proxycore/internal/coords"
	"github.com/crossbridge/proxycore/internal/mapping"
	"github.com/crossbridge/proxycore/internal/protocol/bedrock"
	"github.com/crossbridge/proxycore/internal/protocol/java"
	"github.com/crossbridge/proxycore/internal/registry"
)

// defaultWeatherDurationTicks is the data field sent with a plain
// start/stop rain or thunder LevelEvent, which Bedrock interprets as a
// duration in ticks rather than an intensity (spec.md §8 scenario 2:
// "data ∈ [10000, 60000)"). Java's NotifyClient carries no duration for
// these plain events, so a fixed mid-range value is used instead of 0,
// which Bedrock clients render as "no weather."
const defaultWeatherDurationTicks int32 = 30000

// registerWorldEvents wires gamemode changes and weather notifications
// (SPEC_FULL.md §4.5 "World events", §8 scenarios 2-3). Invalid-bed and
// other informational notices are ignored: nothing is emitted and nothing is
// logged for them, and they are not treated as translator failures.
func registerWorldEvents(reg *registry.Registry, tables *mapping.Tables) {
	reg.RegisterJava(java.KindNotifyClient, func(ctx context.Context, sess registry.SessionHandle, p java.Packet) {
		nc := p.(java.NotifyClient)

		switch nc.Event {
		case java.EventStartRain:
			sess.SendBedrock(bedrock.LevelEvent{Event: bedrock.LevelEventStartRain, Data: defaultWeatherDurationTicks})
		case java.EventStopRain:
			sess.SendBedrock(bedrock.LevelEvent{Event: bedrock.LevelEventStopRain, Data: defaultWeatherDurationTicks})
		case java.EventStartThunder:
			sess.SendBedrock(bedrock.LevelEvent{Event: bedrock.LevelEventStartThunder, Data: defaultWeatherDurationTicks})
		case java.EventStopThunder:
			sess.SendBedrock(bedrock.LevelEvent{Event: bedrock.LevelEventStopThunder, Data: defaultWeatherDurationTicks})
		case java.EventRainStrength:
			sess.SendBedrock(bedrock.LevelEvent{
				Event: bedrock.LevelEventStartRain,
				Data:  int32(coords.ScaleUnitIntervalToUint16(float64(nc.Value))),
			})
		case java.EventThunderStrength:
			sess.SendBedrock(bedrock.LevelEvent{
				Event: bedrock.LevelEventStartThunder,
				Data:  int32(coords.ScaleUnitIntervalToUint16(float64(nc.Value))),
			})
		case java.EventChangeGamemode:
			gamemode := tables.Gamemode.ToBedrock(int32(nc.Value))
			world := sess.World()
			world.Gamemode = gamemode
			sess.SetWorld(world)
			sess.SendBedrock(bedrock.SetPlayerGameType{Gamemode: gamemode})
		case java.EventInvalidBed:
			// Informational; ignored without logging.
		default:
			// Other informational notices are ignored the same way.
		}
	})
}
