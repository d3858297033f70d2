package conversation

// State identifies the current step of the interview flow. The flow is a
// fixed sequence: each candidate reply advances at most one step, except a
// failed email validation which re-prompts without advancing.
type State string

const (
	StateGreeting           State = "greeting"
	StateCollectName        State = "collect_name"
	StateCollectEmail       State = "collect_email"
	StateCollectPhone       State = "collect_phone"
	StateCollectExperience  State = "collect_experience"
	StateCollectPosition    State = "collect_position"
	StateCollectLocation    State = "collect_location"
	StateCollectTechStack   State = "collect_tech_stack"
	StateTechnicalQuestions State = "technical_questions"
	StateCompleted          State = "completed"
)

// Flow lists the states in interview order.
var Flow = []State{
	StateGreeting,
	StateCollectName,
	StateCollectEmail,
	StateCollectPhone,
	StateCollectExperience,
	StateCollectPosition,
	StateCollectLocation,
	StateCollectTechStack,
	StateTechnicalQuestions,
	StateCompleted,
}
