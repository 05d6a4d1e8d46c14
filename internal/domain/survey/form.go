package survey

import (
	"github.com/BruksfildServices01/barberrock-web/internal/httperr"
	"github.com/BruksfildServices01/barberrock-web/internal/models"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Form is the editable survey state.
type Form struct {
	Overall        int    `json:"calificacion"`
	Cleanliness    int    `json:"limpieza_calificacion"`
	Punctuality    int    `json:"puntualidad_calificacion"`
	Treatment      int    `json:"trato_calificacion"`
	WouldRecommend bool   `json:"recomendaria"`
	Comments       string `json:"comentarios"`
}

func DefaultForm() Form {
	return Form{
		Overall:        MaxRating,
		Cleanliness:    MaxRating,
		Punctuality:    MaxRating,
		Treatment:      MaxRating,
		WouldRecommend: true,
	}
}

func FormFromAnswers(a models.SurveyAnswers) Form {
	return Form{
		Overall:        a.Calificacion,
		Cleanliness:    a.LimpiezaCalificacion,
		Punctuality:    a.PuntualidadCalificacion,
		Treatment:      a.TratoCalificacion,
		WouldRecommend: a.Recomendaria,
		Comments:       a.Comentarios,
	}
}

func (f Form) Answers() models.SurveyAnswers {
	return models.SurveyAnswers{
		Calificacion:            f.Overall,
		LimpiezaCalificacion:    f.Cleanliness,
		PuntualidadCalificacion: f.Punctuality,
		TratoCalificacion:       f.Treatment,
		Recomendaria:            f.WouldRecommend,
		Comentarios:             f.Comments,
	}
}

func (f Form) Validate() error {
	for _, r := range []int{f.Overall, f.Cleanliness, f.Punctuality, f.Treatment} {
		if r < MinRating || r > MaxRating {
			return httperr.ErrBusinessMsg("invalid_rating", "Las calificaciones deben estar entre 1 y 5")
		}
	}
	return nil
}
