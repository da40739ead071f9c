package projects

import (
	"strings"
	"time"

	"github.com/Spok95/project-assistant/internal/apperr"
)

// DateLayout — формат дат проекта: дд/мм/гггг, строго.
const DateLayout = "02/01/2006"

const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldStart       = "start"
	FieldEnd         = "end"
)

type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
}

// Draft — то, что пользователь ввёл в форму.
type Draft struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Start       string `json:"start"`
	End         string `json:"end"`
}

// ValidationError перечисляет все неверно заполненные поля.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string { return "please fill in all fields correctly" }

func (e *ValidationError) Kind() apperr.Kind { return apperr.KindValidation }

// ParseDate разбирает дату строго по DateLayout: "31/02/2024" и "1/2/2024" не проходят.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// Validate проверяет все поля сразу. Порядок дат начала и конца не проверяется.
func (d Draft) Validate() (Project, error) {
	var (
		p   Project
		bad []string
		err error
	)
	p.Name = strings.TrimSpace(d.Name)
	if p.Name == "" {
		bad = append(bad, FieldName)
	}
	p.Description = strings.TrimSpace(d.Description)
	if p.Description == "" {
		bad = append(bad, FieldDescription)
	}
	if p.Start, err = ParseDate(d.Start); err != nil {
		bad = append(bad, FieldStart)
	}
	if p.End, err = ParseDate(d.End); err != nil {
		bad = append(bad, FieldEnd)
	}
	if len(bad) > 0 {
		return Project{}, &ValidationError{Fields: bad}
	}
	return p, nil
}
