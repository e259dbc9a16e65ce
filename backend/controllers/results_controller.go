package controllers

import (
	"time"

	"fluidos/backend/config"
	"fluidos/backend/exercises"
	"fluidos/backend/models"
	"fluidos/backend/repository"

	"github.com/gofiber/fiber/v2"
)

const (
	msgAlreadySolved = "✅ Ya resolviste correctamente este ejercicio."
	msgResultSaved   = "Resultado guardado correctamente."

	// DD/MM/YYYY, HH:MM:SS
	DateLayout = "02/01/2006, 15:04:05"
)

type ResultsController struct {
	Results repository.ResultRepository
	Cfg     *config.Config
	Now     func() time.Time
}

func NewResultsController(results repository.ResultRepository, cfg *config.Config) *ResultsController {
	return &ResultsController{Results: results, Cfg: cfg, Now: time.Now}
}

type ResultResponse struct {
	User     string        `json:"usuario"`
	Exercise int           `json:"ejercicio"`
	Answer   string        `json:"respuesta"`
	Score    float64       `json:"puntaje"`
	Status   models.Status `json:"estado"`
	Date     string        `json:"fecha"`
}

// SaveResult godoc
// @Summary Grade and store an answer
// @Description Grades the answer against the reference table, stores it and
// @Description returns the user's cumulative score. Exercises already solved
// @Description correctly are blocked and nothing is stored.
// @Tags results
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "usuario, ejercicio, respuesta"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponse
// @Router /guardar_resultado/ [post]
func (rc *ResultsController) SaveResult(c *fiber.Ctx) error {
	sub := parseSubmission(c.Body())
	ctx := c.UserContext()

	// Not serialized with the insert below: two concurrent correct answers
	// for the same pair can both pass.
	solved, err := rc.Results.HasCorrect(ctx, sub.User, sub.Exercise)
	if err != nil {
		return err
	}
	if solved {
		return c.JSON(fiber.Map{
			"mensaje":   msgAlreadySolved,
			"bloqueado": true,
		})
	}

	grade := exercises.Evaluate(sub.Exercise, sub.Answer)

	result := models.Result{
		User:        sub.User,
		Exercise:    sub.Exercise,
		Answer:      sub.Answer,
		Score:       grade.Score,
		Status:      grade.Status,
		SubmittedAt: rc.Now(),
	}
	if err := rc.Results.Create(ctx, &result); err != nil {
		return err
	}

	total, err := rc.Results.TotalScore(ctx, sub.User)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"mensaje":       msgResultSaved,
		"usuario":       result.User,
		"ejercicio":     result.Exercise,
		"estado":        result.Status,
		"puntaje":       result.Score,
		"puntaje_total": total,
	})
}

// ListResults godoc
// @Summary List every stored result
// @Description Newest first
// @Tags results
// @Produce json
// @Success 200 {array} ResultResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /resultados/ [get]
func (rc *ResultsController) ListResults(c *fiber.Ctx) error {
	results, err := rc.Results.ListNewestFirst(c.UserContext())
	if err != nil {
		return err
	}

	response := make([]ResultResponse, 0, len(results))
	for _, r := range results {
		response = append(response, ResultResponse{
			User:     r.User,
			Exercise: r.Exercise,
			Answer:   r.Answer,
			Score:    r.Score,
			Status:   r.Status,
			Date:     r.SubmittedAt.Local().Format(DateLayout),
		})
	}

	return c.JSON(response)
}

// ListExercises godoc
// @Summary List exercise numbers
// @Tags results
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /ejercicios/ [get]
func (rc *ResultsController) ListExercises(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"ejercicios": exercises.Numbers(),
	})
}
