package stage

// RequestType classifies the kind of goal the client arrived with.
// It is detected once, from the first message of a session.
type RequestType string

const (
	RequestEmotionalState RequestType = "emotional-state"
	RequestDecision       RequestType = "decision"
	RequestRelational     RequestType = "relational"
	RequestGeneral        RequestType = "general"
)

// RequestCriteria are the five validation signals a request must show
// before the request-validation stage is complete.
type RequestCriteria struct {
	Positive  bool `json:"positive"`
	Authored  bool `json:"authored"`
	Specific  bool `json:"specific"`
	Realistic bool `json:"realistic"`
	Motivated bool `json:"motivated"`
}

// Complete reports whether all five criteria have been observed.
func (c RequestCriteria) Complete() bool {
	return c.Positive && c.Authored && c.Specific && c.Realistic && c.Motivated
}

// Merge ORs newly observed signals into the accumulated set.
// Signals are never cleared once seen.
func (c *RequestCriteria) Merge(other RequestCriteria) {
	c.Positive = c.Positive || other.Positive
	c.Authored = c.Authored || other.Authored
	c.Specific = c.Specific || other.Specific
	c.Realistic = c.Realistic || other.Realistic
	c.Motivated = c.Motivated || other.Motivated
}

// SomaticDescriptors are the five body-sensation characteristics the
// somatic-exploration stage must cover before it is complete.
type SomaticDescriptors struct {
	Size        bool `json:"size"`
	Shape       bool `json:"shape"`
	Density     bool `json:"density"`
	Temperature bool `json:"temperature"`
	Movement    bool `json:"movement"`
}

// Complete reports whether all five descriptors have been observed.
func (d SomaticDescriptors) Complete() bool {
	return d.Size && d.Shape && d.Density && d.Temperature && d.Movement
}

// Merge ORs newly observed descriptors into the accumulated set.
func (d *SomaticDescriptors) Merge(other SomaticDescriptors) {
	d.Size = d.Size || other.Size
	d.Shape = d.Shape || other.Shape
	d.Density = d.Density || other.Density
	d.Temperature = d.Temperature || other.Temperature
	d.Movement = d.Movement || other.Movement
}

// Context is the structured memory accumulated over a session.
// Fields are write-once-then-refined: a later turn may sharpen a value,
// but values are never cleared.
type Context struct {
	OriginalRequest  string             `json:"originalRequest,omitempty"`
	ClarifiedRequest string             `json:"clarifiedRequest,omitempty"`
	CurrentStrategy  string             `json:"currentStrategy,omitempty"`
	DeepNeed         string             `json:"deepNeed,omitempty"`
	BodyLocation     string             `json:"bodyLocation,omitempty"`
	Metaphor         string             `json:"metaphor,omitempty"`
	ClientName       string             `json:"clientName,omitempty"`
	Criteria         RequestCriteria    `json:"criteria"`
	Somatic          SomaticDescriptors `json:"somatic"`
}

// State is the machine's working memory for one session. It is owned by
// the session it belongs to and mutated only while handling that
// session's request.
type State struct {
	CurrentStage         Stage       `json:"currentStage"`
	CurrentQuestionIndex int         `json:"currentQuestionIndex"`
	StageHistory         []Stage     `json:"stageHistory"`
	StageResponseCount   int         `json:"stageResponseCount"`
	Context              Context     `json:"context"`
	RequestType          RequestType `json:"requestType"`
	ImportanceRating     *int        `json:"importanceRating"`
	LastClientResponse   string      `json:"lastClientResponse"`
	ClientSaysIDontKnow  bool        `json:"clientSaysIDontKnow"`
	MovementOffered      bool        `json:"movementOffered"`
	IntegrationComplete  bool        `json:"integrationComplete"`
}

// NewState returns the initial state for a fresh session: first stage,
// empty history, generic request type.
func NewState() State {
	return State{
		CurrentStage: Order[0],
		StageHistory: []Stage{},
		RequestType:  RequestGeneral,
	}
}
