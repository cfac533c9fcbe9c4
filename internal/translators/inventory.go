package translators

import (
	"context"

	"github.com/crossbridge/proxycore/internal/protocol/bedrock"
	"github.com/crossbridge/proxycore/internal/protocol/java"
	"github.com/crossbridge/proxycore/internal/registry"
	"github.com/crossbridge/proxycore/internal/sessiontypes"
)

// registerInventory wires window open/contents/slot translation in both
// directions (SPEC_FULL.md SUPPLEMENTED FEATURES #2; §3 "Inventory
// windows"). The session's window map is the source of truth both legs
// keep consistent.
func registerInventory(reg *registry.Registry) {
	reg.RegisterJava(java.KindOpenWindow, func(_ context.Context, sess registry.SessionHandle, p java.Packet) {
		ow := p.(java.OpenWindow)
		sess.OpenWindow(sessiontypes.Window{ID: ow.WindowID, Kind: ow.Kind, SlotCount: ow.SlotCount})
		sess.SendBedrock(bedrock.ContainerOpen{WindowID: ow.WindowID, Kind: ow.Kind, Title: ow.Title})
	})

	reg.RegisterJava(java.KindWindowItems, func(_ context.Context, sess registry.SessionHandle, p java.Packet) {
		wi := p.(java.WindowItems)
		slots := make([]bedrock.ItemStack, len(wi.Slots))
		for i, slot := range wi.Slots {
			bedrockSlot := javaSlotToBedrock(slot)
			sess.SetSlot(wi.WindowID, int32(i), sessiontypes.Slot{
				Present: slot.Present, ItemID: slot.ItemID, Damage: slot.Damage, Count: slot.Count,
			})
			slots[i] = bedrockSlot
		}
		sess.SendBedrock(bedrock.InventoryContent{WindowID: wi.WindowID, Slots: slots})
	})

	reg.RegisterJava(java.KindSetSlot, func(_ context.Context, sess registry.SessionHandle, p java.Packet) {
		ss := p.(java.SetSlot)
		sess.SetSlot(ss.WindowID, ss.SlotIdx, sessiontypes.Slot{
			Present: ss.Item.Present, ItemID: ss.Item.ItemID, Damage: ss.Item.Damage, Count: ss.Item.Count,
		})
		sess.SendBedrock(bedrock.InventorySlot{
			WindowID: ss.WindowID,
			SlotIdx:  ss.SlotIdx,
			Item:     javaSlotToBedrock(ss.Item),
		})
	})

	reg.RegisterBedrock(bedrock.KindInventoryTransaction, func(_ context.Context, sess registry.SessionHandle, p bedrock.Packet) {
		it := p.(bedrock.InventoryTransaction)
		sess.SetSlot(it.WindowID, it.SlotIdx, sessiontypes.Slot{
			Present: it.NewItem.Present,
			ItemID:  int32(it.NewItem.ID),
			Damage:  it.NewItem.Meta,
			Count:   it.NewItem.Count,
		})
		sess.SendJava(java.ClickWindow{
			WindowID: it.WindowID,
			SlotIdx:  it.SlotIdx,
			Item: java.Slot{
				Present: it.NewItem.Present,
				ItemID:  int32(it.NewItem.ID),
				Count:   it.NewItem.Count,
				Damage:  it.NewItem.Meta,
			},
		})
	})
}

func javaSlotToBedrock(slot java.Slot) bedrock.ItemStack {
	return bedrock.ItemStack{
		Present: slot.Present,
		ID:      int16(slot.ItemID),
		Meta:    slot.Damage,
		Count:   slot.Count,
	}
}
