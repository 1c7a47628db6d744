package ghl

// Remote tool names exposed by the GoHighLevel MCP server. CallTool rejects
// anything outside this set before touching the network.
const (
	ToolCreateContactAndSchedule = "create_contact_add_notes_schedule_appointment"
	ToolSearchContacts           = "search_contacts"
	ToolGetContactInfo           = "get_contact_info"
	ToolCreateNote               = "create_note"
	ToolCreateOpportunity        = "create_opportunity"
	ToolListOpportunities        = "list_opportunities"
	ToolGetContactActivities     = "get_contact_activities"
	ToolTriggerWebhook           = "trigger_webhook"
	ToolGetPipelineInfo          = "get_pipeline_info"
)

var allowedTools = map[string]struct{}{
	ToolCreateContactAndSchedule: {},
	ToolSearchContacts:           {},
	ToolGetContactInfo:           {},
	ToolCreateNote:               {},
	ToolCreateOpportunity:        {},
	ToolListOpportunities:        {},
	ToolGetContactActivities:     {},
	ToolTriggerWebhook:           {},
	ToolGetPipelineInfo:          {},
}

// AvailableTools lists every invocable remote tool name.
func AvailableTools() []string {
	return []string{
		ToolCreateContactAndSchedule,
		ToolSearchContacts,
		ToolGetContactInfo,
		ToolCreateNote,
		ToolCreateOpportunity,
		ToolListOpportunities,
		ToolGetContactActivities,
		ToolTriggerWebhook,
		ToolGetPipelineInfo,
	}
}
