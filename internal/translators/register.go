// Package translators holds the concrete Java<->Bedrock packet translators
// and wires them into a Translator Registry (SPEC_FULL.md §4.3, §4.5).
package translators

import (
	"github.com/crossbridge/proxycore/internal/mapping"
	"github.com/crossbridge/proxycore/internal/registry"
)

// Register installs every translator this proxy implements into reg. It is
// the single composition point, called once at startup by the composition
// root in cmd/proxycore (SPEC_FULL.md §4.3 "Registration is static,
// populated once at startup").
func Register(reg *registry.Registry, tables *mapping.Tables, skins *SkinWorkerPool) {
	registerLogin(reg, skins)
	registerJoinGame(reg, tables)
	registerRespawn(reg, tables)
	registerChunk(reg, tables)
	registerEntityLifecycle(reg, tables)
	registerMovement(reg)
	registerWorldEvents(reg, tables)
	registerForms(reg)
	registerChat(reg)
	registerInventory(reg)
	registerKeepalive(reg)
}
