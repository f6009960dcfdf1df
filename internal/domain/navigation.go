package domain

import "fmt"

type Page string

const (
	PageHome      Page = "home"
	PageProduct   Page = "product"
	PageAnalytics Page = "analytics"
)

func (p Page) Valid() bool {
	switch p {
	case PageHome, PageProduct, PageAnalytics:
		return true
	}
	return false
}

type NavAction string

const (
	NavGotoPage      NavAction = "goto_page"
	NavSelectProduct NavAction = "select_product"
	NavSelectStep    NavAction = "select_step"
	NavReset         NavAction = "reset"
)

// Navigation is the per-session UI state: current page plus selected product and step.
type Navigation struct {
	Page      Page   `json:"page"`
	ProductID *int64 `json:"product_id,omitempty"`
	StepID    string `json:"step_id,omitempty"`
}

func NewNavigation() Navigation {
	return Navigation{Page: PageHome}
}

type NavEvent struct {
	Action    NavAction
	Page      Page
	ProductID int64
	StepID    string
}

// ErrBadTransition is returned by Apply for events not allowed in the current state.
type ErrBadTransition struct {
	From   Page
	Action NavAction
	Reason string
}

func (e *ErrBadTransition) Error() string {
	return fmt.Sprintf("navigation: %s from %s: %s", e.Action, e.From, e.Reason)
}

// Apply returns the state after the event. The receiver is not modified.
func (n Navigation) Apply(ev NavEvent) (Navigation, error) {
	switch ev.Action {
	case NavReset:
		return NewNavigation(), nil

	case NavGotoPage:
		if !ev.Page.Valid() {
			return n, &ErrBadTransition{From: n.Page, Action: ev.Action, Reason: fmt.Sprintf("unknown page %q", ev.Page)}
		}
		next := n
		next.Page = ev.Page
		next.StepID = ""
		return next, nil

	case NavSelectProduct:
		if ev.ProductID <= 0 {
			return n, &ErrBadTransition{From: n.Page, Action: ev.Action, Reason: "product id required"}
		}
		id := ev.ProductID
		return Navigation{Page: PageProduct, ProductID: &id}, nil

	case NavSelectStep:
		if n.Page != PageProduct || n.ProductID == nil {
			return n, &ErrBadTransition{From: n.Page, Action: ev.Action, Reason: "no product selected"}
		}
		if ev.StepID == "" {
			return n, &ErrBadTransition{From: n.Page, Action: ev.Action, Reason: "step id required"}
		}
		next := n
		next.StepID = ev.StepID
		return next, nil
	}

	return n, &ErrBadTransition{From: n.Page, Action: ev.Action, Reason: "unknown action"}
}
