package translators

import (
	"context"

	"github.com/crossbridge/proxycore/internal/protocol/bedrock"
	"github.com/crossbridge/proxycore/internal/protocol/java"
	"github.com/crossbridge/proxycore/internal/registry"
)

// registerChat wires chat/system-message translation (SPEC_FULL.md
// SUPPLEMENTED FEATURES #1). Whispers carry the Java sender's UUID in the
// Bedrock packet's Extra field as the sender's XUID-equivalent.
func registerChat(reg *registry.Registry) {
	reg.RegisterJava(java.KindChatMessage, func(_ context.Context, sess registry.SessionHandle, p java.Packet) {
		cm := p.(java.ChatMessage)

		textType := bedrock.TextTypeChat
		extra := ""
		switch cm.Type {
		case java.ChatTypeSystem:
			textType = bedrock.TextTypeSystem
		case java.ChatTypeWhisper:
			textType = bedrock.TextTypeWhisper
			extra = cm.SenderUUID
		}

		sess.SendBedrock(bedrock.Text{
			Type:       textType,
			SourceName: cm.SenderUUID,
			Message:    cm.Message,
			Extra:      extra,
		})
	})

	reg.RegisterJava(java.KindSystemChat, func(_ context.Context, sess registry.SessionHandle, p java.Packet) {
		sc := p.(java.SystemChat)
		textType := bedrock.TextTypeSystem
		if sc.Overlay {
			textType = bedrock.TextTypePopup
		}
		sess.SendBedrock(bedrock.Text{Type: textType, Message: sc.Message})
	})
}
