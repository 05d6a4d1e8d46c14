package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barberrock-web/internal/httperr"
	"github.com/BruksfildServices01/barberrock-web/internal/models"
)

func TestClassify(t *testing.T) {
	assert.Equal(t, AppointmentID("123"), Classify("123"))
	assert.Equal(t, AppointmentID("0"), Classify("0"))
	assert.Equal(t, SurveyToken("a1b2c3"), Classify("a1b2c3"))
	assert.Equal(t, SurveyToken("12a"), Classify("12a"))
	assert.Equal(t, SurveyToken(""), Classify(""))
	assert.Equal(t, SurveyToken("１２"), Classify("１２"))
}

func TestDefaultForm(t *testing.T) {
	f := DefaultForm()
	assert.Equal(t, Form{Overall: 5, Cleanliness: 5, Punctuality: 5, Treatment: 5, WouldRecommend: true}, f)
	assert.NoError(t, f.Validate())
}

func TestForm_ValidateRejectsOutOfRange(t *testing.T) {
	f := DefaultForm()
	f.Punctuality = 0
	assert.True(t, httperr.IsBusiness(f.Validate(), "invalid_rating"))

	f = DefaultForm()
	f.Treatment = 6
	assert.Error(t, f.Validate())
}

func TestShowForm_PrefillsExistingSurvey(t *testing.T) {
	info := &models.SurveyInfo{CitaID: 3, Encuesta: &models.SurveyAnswers{
		Calificacion: 5, LimpiezaCalificacion: 4, PuntualidadCalificacion: 5, TratoCalificacion: 3,
		Recomendaria: true, Comentarios: "Excelente",
	}}

	o := ShowForm(info)
	assert.Equal(t, OutcomeForm, o.Kind)
	assert.True(t, o.Submitted)
	assert.Equal(t, Form{5, 4, 5, 3, true, "Excelente"}, o.Form)

	fresh := ShowForm(&models.SurveyInfo{CitaID: 3})
	assert.False(t, fresh.Submitted)
	assert.Equal(t, DefaultForm(), fresh.Form)
}

func TestMarkerRoundTrip(t *testing.T) {
	o, ok := ParseMarker(Redirect("/encuesta/abc").Marker())
	assert.True(t, ok)
	assert.Equal(t, Redirect("/encuesta/abc"), o)

	o, ok = ParseMarker(Failure(MsgCannotAccess).Marker())
	assert.True(t, ok)
	assert.Equal(t, MsgCannotAccess, o.Message)

	_, ok = ParseMarker("true")
	assert.False(t, ok)
}

func TestPaths(t *testing.T) {
	assert.Equal(t, "/encuesta/abc", TokenPath("abc"))
	assert.Equal(t, "/encuesta/qr/q%2F1", QRPath("q/1"))
	assert.True(t, IsQRPath(QRPath("x")))
	assert.False(t, IsQRPath(TokenPath("x")))
	assert.Equal(t, "/login?redirect=%2Fencuesta%2F12", LoginPath("/encuesta/12"))
}
