package survey

import (
	"context"
	"strconv"

	domain "github.com/BruksfildServices01/barberrock-web/internal/domain/survey"
	"github.com/BruksfildServices01/barberrock-web/internal/httperr"
	"github.com/BruksfildServices01/barberrock-web/internal/session"
)

type ResolveQR struct {
	gw domain.Gateway
}

func NewResolveQR(gw domain.Gateway) *ResolveQR {
	return &ResolveQR{gw: gw}
}

func (uc *ResolveQR) Execute(
	ctx context.Context,
	sess *session.Session,
	qrToken string,
) domain.QROutcome {

	if !sess.IsAuthenticated() {
		return uc.gate(ctx, qrToken)
	}

	pending, err := uc.gw.GetQRPendingSurvey(ctx, sess.AccessToken(), qrToken)
	switch {
	case err == nil:
	case httperr.IsNotFound(err):
		return domain.QROutcome{
			Kind:    domain.QRNoPending,
			Message: httperr.MessageOr(err, domain.MsgNoPendingWithBarber),
		}
	case httperr.IsUnauthorized(err):
		sess.Clear()
		return domain.QROutcome{
			Kind:     domain.QRRedirect,
			Message:  httperr.MsgSessionExpired,
			Location: domain.LoginPath(domain.QRPath(qrToken)),
		}
	default:
		return domain.QROutcome{
			Kind:    domain.QRFailed,
			Message: httperr.MessageOr(err, domain.MsgLoadFailed),
		}
	}

	if !pending.TieneCitaPendiente || pending.Cita == nil {
		return domain.QROutcome{Kind: domain.QRNoPending, Message: domain.MsgNoPendingWithBarber}
	}

	cita := pending.Cita
	next := cita.EncuestaToken
	if next == "" {
		next = cita.SurveyToken
	}
	if next == "" {
		next = strconv.Itoa(cita.ID)
	}
	return domain.QROutcome{Kind: domain.QRRedirect, Location: domain.TokenPath(next)}
}

func (uc *ResolveQR) gate(ctx context.Context, qrToken string) domain.QROutcome {
	info, err := uc.gw.GetQRInfo(ctx, qrToken)
	if err != nil {
		return domain.QROutcome{Kind: domain.QRInvalid, Message: domain.MsgInvalidQR}
	}
	barber := info.Barbero
	return domain.QROutcome{
		Kind:        domain.QRGate,
		Barber:      &barber,
		Message:     info.Mensaje,
		LoginURL:    domain.LoginPath(domain.QRPath(qrToken)),
		RegisterURL: domain.RegisterURL(domain.QRPath(qrToken)),
	}
}
