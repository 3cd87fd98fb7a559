package services

import "strings"

// View tags shared between the classifier and the view controller.
const (
	ViewPortal        = "portal"
	ViewQuiz          = "quiz"
	ViewDashboard     = "dashboard"
	ViewEditor        = "editor"
	ViewProcessing    = "processing"
	ViewResetPassword = "reset_password"
)

type IntentKind string

const (
	IntentRecoveryFlow    IntentKind = "recovery"
	IntentPaymentReturn   IntentKind = "payment_return"
	IntentQuizView        IntentKind = "quiz_view"
	IntentLegacyPageParam IntentKind = "legacy_page"
	IntentPathRoute       IntentKind = "path_route"
	IntentDefault         IntentKind = "default"
)

// Intent is the single classified outcome of interpreting the ambient
// request signals. Exactly one intent applies per navigation.
type Intent struct {
	Kind           IntentKind
	View           string // target view for named-route kinds
	QuizIdentifier string
}

// RequestContext is the ambient context the SPA reports on load and on
// every history navigation.
type RequestContext struct {
	Path     string
	Query    map[string]string
	Fragment string
}

func (rc RequestContext) query(key string) string {
	if rc.Query == nil {
		return ""
	}
	return rc.Query[key]
}

func (rc RequestContext) hasQuery(key string) bool {
	if rc.Query == nil {
		return false
	}
	_, ok := rc.Query[key]
	return ok
}

// pathToView is the static route table. Unknown paths fall through to the
// portal default.
var pathToView = map[string]string{
	"/":              ViewPortal,
	"/howto":         "howto",
	"/effective":     "effective",
	"/logic":         "logic",
	"/contact":       "contact",
	"/legal":         "legal",
	"/privacy":       "privacy",
	"/faq":           "faq",
	"/price":         "price",
	"/announcements": "announcements",
	"/dashboard":     ViewDashboard,
	"/editor":        ViewEditor,
}

type detector func(RequestContext) (Intent, bool)

// Precedence is this list's order. Recovery links must never be swallowed
// by a quiz id riding along, and a checkout return always lands on the
// dashboard even when a quiz id is also present.
var detectors = []detector{
	detectRecoveryFlow,
	detectPaymentReturn,
	detectQuizView,
	detectLegacyPageParam,
	detectPathRoute,
}

// Classify inspects path, query and fragment and produces exactly one
// intent. It is a pure function; all state lives in the view controller.
func Classify(rc RequestContext) Intent {
	for _, detect := range detectors {
		if intent, ok := detect(rc); ok {
			return intent
		}
	}
	return Intent{Kind: IntentDefault, View: ViewPortal}
}

func detectRecoveryFlow(rc RequestContext) (Intent, bool) {
	isRecovery := strings.Contains(rc.Fragment, "type=recovery") ||
		rc.query("type") == "recovery" ||
		rc.hasQuery("token")
	if !isRecovery {
		return Intent{}, false
	}
	return Intent{Kind: IntentRecoveryFlow, View: ViewProcessing}, true
}

func detectPaymentReturn(rc RequestContext) (Intent, bool) {
	status := rc.query("payment")
	if status != "success" && status != "cancel" {
		return Intent{}, false
	}
	return Intent{Kind: IntentPaymentReturn, View: ViewDashboard}, true
}

func detectQuizView(rc RequestContext) (Intent, bool) {
	id := rc.query("id")
	if id == "" {
		return Intent{}, false
	}
	return Intent{Kind: IntentQuizView, View: ViewQuiz, QuizIdentifier: id}, true
}

func detectLegacyPageParam(rc RequestContext) (Intent, bool) {
	page := rc.query("page")
	if page == "" {
		return Intent{}, false
	}
	view, ok := pathToView["/"+page]
	if !ok {
		view = ViewPortal
	}
	return Intent{Kind: IntentLegacyPageParam, View: view}, true
}

func detectPathRoute(rc RequestContext) (Intent, bool) {
	view, ok := pathToView[rc.Path]
	if !ok {
		return Intent{}, false
	}
	return Intent{Kind: IntentPathRoute, View: view}, true
}
