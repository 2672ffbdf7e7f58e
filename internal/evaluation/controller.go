package evaluation

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/MikeSquared-Agency/VendorEval/internal/catalog"
	"github.com/MikeSquared-Agency/VendorEval/internal/classifier"
	"github.com/MikeSquared-Agency/VendorEval/internal/scoring"
)

var (
	// ErrFieldNotFound is returned when a command targets a section,
	// criterion, key metric or calculator binding the form does not have.
	ErrFieldNotFound = errors.New("field not found")
	// ErrNoSuggestion is returned by ApplySuggestion when nothing was calculated.
	ErrNoSuggestion = errors.New("no calculated rating to apply")
	// ErrNotApplicable is returned when rating a criterion flagged N/A.
	ErrNotApplicable = errors.New("criterion is not applicable")
)

// Controller executes form commands against a single Evaluation. It is not
// safe for concurrent use; callers own one Controller per form.
type Controller struct {
	eval    *Evaluation
	catalog *catalog.Catalog
	engine  *scoring.Engine
	logger  *slog.Logger

	// session is the last calculator result awaiting ApplySuggestion.
	session *classifier.Result
	result  scoring.Result
}

// NewController creates a Controller over a fresh evaluation built from t.
func NewController(t *Template, cat *catalog.Catalog, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Controller{
		eval:    New(t),
		catalog: cat,
		engine:  scoring.NewEngine(logger),
		logger:  logger,
	}
	c.Recalculate()
	return c
}

// Evaluation returns the form state.
func (c *Controller) Evaluation() *Evaluation { return c.eval }

// Result returns the scores from the last recalculation.
func (c *Controller) Result() scoring.Result { return c.result }

// Recalculate scores a snapshot of the current form.
func (c *Controller) Recalculate() scoring.Result {
	c.result = c.engine.Score(c.eval.Snapshot())
	return c.result
}

func (c *Controller) criterion(sectionID, criterionID string) (*CriterionState, error) {
	cs, ok := c.eval.Criterion(sectionID, criterionID)
	if !ok {
		return nil, fmt.Errorf("%w: criterion %s/%s", ErrFieldNotFound, sectionID, criterionID)
	}
	return cs, nil
}

// SetRating stores a rating clamped to [1,5].
func (c *Controller) SetRating(sectionID, criterionID string, rating int) error {
	cs, err := c.criterion(sectionID, criterionID)
	if err != nil {
		return err
	}
	if cs.NotApplicable {
		return fmt.Errorf("%w: %s/%s", ErrNotApplicable, sectionID, criterionID)
	}
	cs.Rating = scoring.ClampRating(rating)
	c.Recalculate()
	return nil
}

// ClearRating marks a criterion as not rated.
func (c *Controller) ClearRating(sectionID, criterionID string) error {
	cs, err := c.criterion(sectionID, criterionID)
	if err != nil {
		return err
	}
	cs.Rating = scoring.RatingNone
	c.Recalculate()
	return nil
}

// SetNotApplicable toggles the N/A flag. Flagging a criterion drops its rating.
func (c *Controller) SetNotApplicable(sectionID, criterionID string, na bool) error {
	cs, err := c.criterion(sectionID, criterionID)
	if err != nil {
		return err
	}
	cs.NotApplicable = na
	if na {
		cs.Rating = scoring.RatingNone
	}
	c.Recalculate()
	return nil
}

// SetObservation stores the free-text observation of a criterion.
func (c *Controller) SetObservation(sectionID, criterionID, text string) error {
	cs, err := c.criterion(sectionID, criterionID)
	if err != nil {
		return err
	}
	cs.Observation = text
	return nil
}

// SelectVendor selects a catalog vendor and resets the service selection.
func (c *Controller) SelectVendor(name string) error {
	if _, err := c.catalog.Vendor(name); err != nil {
		return err
	}
	c.eval.Vendor = name
	c.eval.Service = catalog.AllServices
	return nil
}

// SelectService selects a service of the current vendor and copies its
// agreed SLA into the form. Selecting AllServices leaves the SLA untouched.
func (c *Controller) SelectService(name string) error {
	if name == catalog.AllServices {
		c.eval.Service = name
		return nil
	}
	sla, err := c.catalog.SLA(c.eval.Vendor, name)
	if err != nil {
		return err
	}
	c.eval.Service = name
	c.eval.SLA.Critical.Agreed = sla.Critical
	c.eval.SLA.High.Agreed = sla.High
	c.eval.SLA.Medium.Agreed = sla.Medium
	c.eval.SLA.Low.Agreed = sla.Low
	c.logger.Debug("sla applied", "vendor", c.eval.Vendor, "service", name)
	return nil
}

// SetTicketStats replaces the ticket counters.
func (c *Controller) SetTicketStats(t TicketStats) {
	c.eval.Tickets = t
}

// TicketRates returns the informational resolution and reopen percentages.
func (c *Controller) TicketRates() classifier.TicketRates {
	return c.eval.Tickets.Rates()
}

// Calculate runs the calculator for kind and holds the result for
// ApplySuggestion. The previous suggestion is discarded even when the
// calculation fails.
func (c *Controller) Calculate(kind classifier.Kind, in classifier.Input) (classifier.Result, error) {
	c.session = nil
	r, err := classifier.Classify(kind, in)
	if err != nil {
		return classifier.Result{}, err
	}
	c.session = &r
	return r, nil
}

// Session returns the pending calculator result, if any.
func (c *Controller) Session() (classifier.Result, bool) {
	if c.session == nil {
		return classifier.Result{}, false
	}
	return *c.session, true
}

// ApplySuggestion writes the pending calculator rating into the criterion
// bound to its kind, clears the session and recalculates. When the target is
// missing or N/A the session is kept so the rating can be applied once the
// criterion is applicable again.
func (c *Controller) ApplySuggestion() (scoring.Result, error) {
	if c.session == nil {
		return scoring.Result{}, ErrNoSuggestion
	}
	s := *c.session

	cs, ok := c.eval.CriterionForKind(s.Kind)
	if !ok {
		return scoring.Result{}, fmt.Errorf("%w: no criterion for %s", ErrFieldNotFound, s.Kind)
	}
	if cs.NotApplicable {
		return scoring.Result{}, fmt.Errorf("%w: %s", ErrNotApplicable, cs.ID)
	}

	cs.Rating = s.Rating
	c.session = nil
	c.logger.Info("calculated rating applied", "kind", s.Kind, "criterion", cs.ID, "rating", s.Rating)
	return c.Recalculate(), nil
}

// SuggestRatings derives ratings from the ticket counters and the
// critical-priority SLA times already on the form, writes them into their
// bound criteria and recalculates. Criteria that are absent or N/A are skipped.
func (c *Controller) SuggestRatings() ([]classifier.Result, scoring.Result) {
	var suggested []classifier.Result

	t := c.eval.Tickets
	if t.Opened > 0 && t.Resolved > 0 {
		if r, err := classifier.TicketResolution(t.Opened, t.Resolved); err == nil {
			suggested = append(suggested, r)
		}
	}
	if t.Resolved > 0 {
		if r, err := classifier.ReopenRate(t.Resolved, t.Reopened); err == nil {
			suggested = append(suggested, r)
		}
	}

	crit := c.eval.SLA.Critical
	if crit.Agreed != "" && crit.Actual != "" {
		agreed := classifier.ParseDurationMinutes(crit.Agreed)
		actual := classifier.ParseDurationMinutes(crit.Actual)
		if agreed > 0 {
			if r, err := classifier.ResponseTime(agreed, actual); err == nil {
				suggested = append(suggested, r)
			}
		}
	}

	applied := suggested[:0]
	for _, r := range suggested {
		cs, ok := c.eval.CriterionForKind(r.Kind)
		if !ok || cs.NotApplicable {
			c.logger.Debug("suggestion skipped", "kind", r.Kind)
			continue
		}
		cs.Rating = r.Rating
		applied = append(applied, r)
	}

	return applied, c.Recalculate()
}
