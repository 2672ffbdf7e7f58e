package evaluation

import "fmt"

// CriterionInput is the declared state of one criterion in a form file or
// request body. A nil Rating leaves the criterion unrated.
type CriterionInput struct {
	Rating        *int   `json:"rating,omitempty" yaml:"rating,omitempty"`
	NotApplicable bool   `json:"na,omitempty" yaml:"na,omitempty"`
	Observation   string `json:"observation,omitempty" yaml:"observation,omitempty"`
}

// FormInput is a declarative description of a filled-in form. Criteria are
// keyed by section id, then criterion id.
type FormInput struct {
	General      General                              `json:"general" yaml:"general"`
	Vendor       string                               `json:"vendor,omitempty" yaml:"vendor,omitempty"`
	Service      string                               `json:"service,omitempty" yaml:"service,omitempty"`
	SLA          SLAParams                            `json:"sla" yaml:"sla"`
	Tickets      TicketStats                          `json:"tickets" yaml:"tickets"`
	Criteria     map[string]map[string]CriterionInput `json:"criteria,omitempty" yaml:"criteria,omitempty"`
	KeyMetrics   map[string]string                    `json:"key_metrics,omitempty" yaml:"key_metrics,omitempty"`
	Observations Observations                         `json:"observations" yaml:"observations"`
}

// overlay copies every non-empty field of src over dst.
func (dst *SLAParams) overlay(src SLAParams) {
	pairs := []struct{ to, from *PriorityTimes }{
		{&dst.Critical, &src.Critical},
		{&dst.High, &src.High},
		{&dst.Medium, &src.Medium},
		{&dst.Low, &src.Low},
	}
	for _, p := range pairs {
		if p.from.Agreed != "" {
			p.to.Agreed = p.from.Agreed
		}
		if p.from.Actual != "" {
			p.to.Actual = p.from.Actual
		}
	}
}

// Apply loads a FormInput into the form. Vendor and service selection run
// first so explicit SLA values in the input take precedence over catalog
// values. Unknown section, criterion or key-metric ids fail with
// ErrFieldNotFound.
func (c *Controller) Apply(in FormInput) error {
	c.eval.General = in.General

	if in.Vendor != "" {
		if err := c.SelectVendor(in.Vendor); err != nil {
			return err
		}
		if in.Service != "" {
			if err := c.SelectService(in.Service); err != nil {
				return err
			}
		}
	}
	c.eval.SLA.overlay(in.SLA)
	c.SetTicketStats(in.Tickets)

	for sectionID, criteria := range in.Criteria {
		for criterionID, ci := range criteria {
			if err := c.applyCriterion(sectionID, criterionID, ci); err != nil {
				return err
			}
		}
	}

	for id, value := range in.KeyMetrics {
		km, ok := c.eval.KeyMetric(id)
		if !ok {
			return fmt.Errorf("%w: key metric %q", ErrFieldNotFound, id)
		}
		km.Value = value
	}

	c.eval.Observations = in.Observations
	c.Recalculate()
	return nil
}

func (c *Controller) applyCriterion(sectionID, criterionID string, ci CriterionInput) error {
	if err := c.SetNotApplicable(sectionID, criterionID, ci.NotApplicable); err != nil {
		return err
	}
	if !ci.NotApplicable && ci.Rating != nil {
		if err := c.SetRating(sectionID, criterionID, *ci.Rating); err != nil {
			return err
		}
	}
	return c.SetObservation(sectionID, criterionID, ci.Observation)
}
