package translators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crossbridge/proxycore/internal/protocol/bedrock"
	"github.com/crossbridge/proxycore/internal/protocol/java"
	"github.com/crossbridge/proxycore/internal/sessiontypes"
)

func TestOpenWindowRecordsWindowAndEmitsContainerOpen(t *testing.T) {
	reg, _ := newTestRegistry(t)
	registerInventory(reg)
	sess := newFakeSession()

	reg.DispatchJava(context.Background(), sess, java.OpenWindow{WindowID: 1, Kind: "chest", Title: "Chest", SlotCount: 27})

	w, ok := sess.Window(1)
	require.True(t, ok)
	assert.Equal(t, "chest", w.Kind)
	require.Len(t, sess.bedrockOut, 1)
	_, ok = sess.bedrockOut[0].(bedrock.ContainerOpen)
	assert.True(t, ok)
}

func TestSetSlotUpdatesWindowContentsAndEmitsInventorySlot(t *testing.T) {
	reg, _ := newTestRegistry(t)
	registerInventory(reg)
	sess := newFakeSession()
	sess.OpenWindow(sessiontypes.Window{ID: 1, Kind: "chest", SlotCount: 27})

	reg.DispatchJava(context.Background(), sess, java.SetSlot{
		WindowID: 1, SlotIdx: 3,
		Item: java.Slot{Present: true, ItemID: 5, Count: 1},
	})

	w, _ := sess.Window(1)
	slot, ok := w.Contents[3]
	require.True(t, ok)
	assert.Equal(t, int32(5), slot.ItemID)
	require.Len(t, sess.bedrockOut, 1)
	_, ok = sess.bedrockOut[0].(bedrock.InventorySlot)
	assert.True(t, ok)
}

func TestInventoryTransactionReverseLegEmitsClickWindow(t *testing.T) {
	reg, _ := newTestRegistry(t)
	registerInventory(reg)
	sess := newFakeSession()
	sess.OpenWindow(sessiontypes.Window{ID: 1, Kind: "chest", SlotCount: 27})

	reg.DispatchBedrock(context.Background(), sess, bedrock.InventoryTransaction{
		WindowID: 1, SlotIdx: 2,
		NewItem: bedrock.ItemStack{Present: true, ID: 9, Count: 1},
	})

	require.Len(t, sess.javaOut, 1)
	cw, ok := sess.javaOut[0].(java.ClickWindow)
	require.True(t, ok)
	assert.Equal(t, int32(9), cw.Item.ItemID)
}
