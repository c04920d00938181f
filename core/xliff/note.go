package xliff

import (
	"fmt"
	"time"

	"github.com/FocuswithJustin/xliffkit/core/coerce"
	"github.com/FocuswithJustin/xliffkit/core/enum"
	"github.com/FocuswithJustin/xliffkit/core/node"
	"github.com/FocuswithJustin/xliffkit/core/schema"
)

// Note is a <note>: a comment for translators or tools.
type Note struct {
	schema.Base
	Value     *string
	Lang      *string
	From      *string
	Priority  *int
	Annotates enum.Value[Annotates]
}

var noteSchema = schema.New[Note]("note",
	schema.Text("Value", coerce.String, func(n *Note) **string { return &n.Value }).Require(),
	schema.Attr("Lang", "xml:lang", coerce.String, func(n *Note) **string { return &n.Lang }),
	schema.Attr("From", "from", coerce.String, func(n *Note) **string { return &n.From }),
	schema.Attr("Priority", "priority", coerce.Int, func(n *Note) **int { return &n.Priority }).Rule(priorityRange),
	schema.Enum("Annotates", "annotates", AnnotatesValues, func(n *Note) *enum.Value[Annotates] { return &n.Annotates }),
)

func priorityRange(p int) error {
	if p < 1 || p > 10 {
		return fmt.Errorf("priority must be between 1 and 10, got %d", p)
	}
	return nil
}

// NewNote builds a Note from src, vals, or both.
func NewNote(src node.Element, vals schema.Values) (*Note, error) {
	return noteSchema.Make(src, vals)
}

func (n *Note) Tag() string                                { return noteSchema.Tag() }
func (n *Note) Validate(recurse, gatherAll bool) error     { return noteSchema.Validate(n, recurse, gatherAll) }
func (n *Note) Render(f node.Factory) (node.Element, error) { return noteSchema.Render(n, f) }
func (n *Note) ToNode(f node.Factory) (node.Element, error) { return noteSchema.ToNode(n, f) }

func notesField[E any](ptr func(*E) *[]*Note) *schema.List[E, *Note] {
	return schema.Elements("Notes", ptr, schema.Decode[*Note]("note", NewNote))
}

// Phase is a <phase>: one step of the localization process.
type Phase struct {
	schema.Base
	PhaseName    *string
	ProcessName  *string
	CompanyName  *string
	ToolID       *string
	Date         *time.Time
	JobID        *string
	ContactName  *string
	ContactEmail *string
	ContactPhone *string
	Notes        []*Note
}

var phaseSchema = schema.New[Phase]("phase",
	schema.Attr("PhaseName", "phase-name", coerce.String, func(p *Phase) **string { return &p.PhaseName }).Require(),
	schema.Attr("ProcessName", "process-name", coerce.String, func(p *Phase) **string { return &p.ProcessName }).Require(),
	schema.Attr("CompanyName", "company-name", coerce.String, func(p *Phase) **string { return &p.CompanyName }),
	schema.Attr("ToolID", "tool-id", coerce.String, func(p *Phase) **string { return &p.ToolID }),
	schema.Attr("Date", "date", coerce.Time, func(p *Phase) **time.Time { return &p.Date }),
	schema.Attr("JobID", "job-id", coerce.String, func(p *Phase) **string { return &p.JobID }),
	schema.Attr("ContactName", "contact-name", coerce.String, func(p *Phase) **string { return &p.ContactName }),
	schema.Attr("ContactEmail", "contact-email", coerce.String, func(p *Phase) **string { return &p.ContactEmail }),
	schema.Attr("ContactPhone", "contact-phone", coerce.String, func(p *Phase) **string { return &p.ContactPhone }),
	notesField(func(p *Phase) *[]*Note { return &p.Notes }),
)

// NewPhase builds a Phase from src, vals, or both.
func NewPhase(src node.Element, vals schema.Values) (*Phase, error) {
	return phaseSchema.Make(src, vals)
}

func (p *Phase) Tag() string                                { return phaseSchema.Tag() }
func (p *Phase) Validate(recurse, gatherAll bool) error     { return phaseSchema.Validate(p, recurse, gatherAll) }
func (p *Phase) Render(f node.Factory) (node.Element, error) { return phaseSchema.Render(p, f) }
func (p *Phase) ToNode(f node.Factory) (node.Element, error) { return phaseSchema.ToNode(p, f) }

// PhaseGroup is a <phase-group>.
type PhaseGroup struct {
	schema.Base
	Phases []*Phase
}

var phaseGroupSchema = schema.New[PhaseGroup]("phase-group",
	schema.Elements("Phases", func(g *PhaseGroup) *[]*Phase { return &g.Phases }, schema.Decode[*Phase]("phase", NewPhase)).Require(),
)

// NewPhaseGroup builds a PhaseGroup from src, vals, or both.
func NewPhaseGroup(src node.Element, vals schema.Values) (*PhaseGroup, error) {
	return phaseGroupSchema.Make(src, vals)
}

func (g *PhaseGroup) Tag() string                            { return phaseGroupSchema.Tag() }
func (g *PhaseGroup) Validate(recurse, gatherAll bool) error { return phaseGroupSchema.Validate(g, recurse, gatherAll) }
func (g *PhaseGroup) Render(f node.Factory) (node.Element, error) {
	return phaseGroupSchema.Render(g, f)
}
func (g *PhaseGroup) ToNode(f node.Factory) (node.Element, error) {
	return phaseGroupSchema.ToNode(g, f)
}

// Phase returns the phase with the given name.
func (g *PhaseGroup) Phase(name string) (*Phase, bool) {
	for _, p := range g.Phases {
		if p != nil && p.PhaseName != nil && *p.PhaseName == name {
			return p, true
		}
	}
	return nil, false
}
