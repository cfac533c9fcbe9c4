package translators

import (
	"context"
	"fmt"

	"github.com/crossbridge/proxycore/internal/protocol/bedrock"
	"github.com/crossbridge/proxycore/internal/registry"
	"github.com/crossbridge/proxycore/internal/sessiontypes"
	"github.com/crossbridge/proxycore/internal/translators/form"
)

// SendForm allocates a form id, serializes and validates description, and
// emits a ModalFormRequest, returning the pending slot the caller can await
// on (SPEC_FULL.md §4.5 "Forms"; §8 scenario 5). Any translator may call
// this; it is not itself bound to a packet kind.
func SendForm(sess registry.SessionHandle, description any) (*sessiontypes.PendingForm, error) {
	data, err := form.Serialize(description)
	if err != nil {
		return nil, fmt.Errorf("send form: %w", err)
	}

	id := sess.NextFormID()
	pending := sess.PutPendingForm(id)
	sess.SendBedrock(bedrock.ModalFormRequest{FormID: id, Data: string(data)})
	return pending, nil
}

// registerForms wires the Bedrock response leg: a ModalFormResponse
// completes the matching pending slot, or is dropped if its id is unknown
// (already completed, expired, or never sent).
func registerForms(reg *registry.Registry) {
	reg.RegisterBedrock(bedrock.KindModalFormResponse, func(_ context.Context, sess registry.SessionHandle, p bedrock.Packet) {
		resp := p.(bedrock.ModalFormResponse)
		sess.CompleteForm(resp.FormID, sessiontypes.FormResult{
			Response:  resp.Response,
			Cancelled: resp.Cancelled,
		})
	})
}
