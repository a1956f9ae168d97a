// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// IntegrationRequestsColumns holds the columns for the "integration_requests" table.
	IntegrationRequestsColumns = []*schema.Column{
		{Name: "integration_id", Type: field.TypeString, Unique: true},
		{Name: "integration_type", Type: field.TypeEnum, Enums: []string{"ticket_sync", "user_verification", "client_data_fetch", "bulk_sync", "status_update"}},
		{Name: "priority", Type: field.TypeInt, Default: 2},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "scheduled", "in_progress", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "max_retries", Type: field.TypeInt, Default: 3},
		{Name: "force_retry", Type: field.TypeBool, Default: false},
		{Name: "timeout_seconds", Type: field.TypeInt, Nullable: true},
		{Name: "scheduled_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "response", Type: field.TypeJSON, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "attempts", Type: field.TypeJSON, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// IntegrationRequestsTable holds the schema information for the "integration_requests" table.
	IntegrationRequestsTable = &schema.Table{
		Name:       "integration_requests",
		Columns:    IntegrationRequestsColumns,
		PrimaryKey: []*schema.Column{IntegrationRequestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "integrationrequest_status_priority_scheduled_at",
				Unique:  false,
				Columns: []*schema.Column{IntegrationRequestsColumns[3], IntegrationRequestsColumns[2], IntegrationRequestsColumns[9]},
			},
			{
				Name:    "integrationrequest_status",
				Unique:  false,
				Columns: []*schema.Column{IntegrationRequestsColumns[3]},
			},
			{
				Name:    "integrationrequest_integration_type",
				Unique:  false,
				Columns: []*schema.Column{IntegrationRequestsColumns[1]},
			},
			{
				Name:    "integrationrequest_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{IntegrationRequestsColumns[3], IntegrationRequestsColumns[16]},
			},
		},
	}
	// SupportConversationsColumns holds the columns for the "support_conversations" table.
	SupportConversationsColumns = []*schema.Column{
		{Name: "conversation_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "username", Type: field.TypeString, Nullable: true},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"category_selection", "game_selection", "timing_selection", "description_input", "attachments_optional", "confirmation", "completed", "cancelled"}, Default: "category_selection"},
		{Name: "current_step", Type: field.TypeInt, Default: 1},
		{Name: "form_data", Type: field.TypeJSON, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "ticket_id", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "last_active_at", Type: field.TypeTime},
	}
	// SupportConversationsTable holds the schema information for the "support_conversations" table.
	SupportConversationsTable = &schema.Table{
		Name:       "support_conversations",
		Columns:    SupportConversationsColumns,
		PrimaryKey: []*schema.Column{SupportConversationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "supportconversation_is_active_last_active_at",
				Unique:  false,
				Columns: []*schema.Column{SupportConversationsColumns[6], SupportConversationsColumns[9]},
			},
			{
				Name:    "supportconversation_user_id",
				Unique:  true,
				Columns: []*schema.Column{SupportConversationsColumns[1]},
				Annotation: &entsql.IndexAnnotation{
					Where: "is_active",
				},
			},
		},
	}
	// TicketsColumns holds the columns for the "tickets" table.
	TicketsColumns = []*schema.Column{
		{Name: "ticket_id", Type: field.TypeString, Unique: true},
		{Name: "owner_id", Type: field.TypeInt64},
		{Name: "owner_username", Type: field.TypeString, Nullable: true},
		{Name: "owner_cpf_masked", Type: field.TypeString, Nullable: true},
		{Name: "category", Type: field.TypeString},
		{Name: "game", Type: field.TypeString, Nullable: true},
		{Name: "problem_timing", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "urgency", Type: field.TypeEnum, Enums: []string{"low", "normal", "high", "critical"}, Default: "normal"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "open", "in_progress", "resolved", "closed", "cancelled"}, Default: "pending"},
		{Name: "assignee", Type: field.TypeString, Nullable: true},
		{Name: "resolution", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "upstream_id", Type: field.TypeString, Nullable: true},
		{Name: "protocol", Type: field.TypeString},
		{Name: "sync_status", Type: field.TypeEnum, Enums: []string{"pending", "synced", "failed"}, Default: "pending"},
		{Name: "attachments", Type: field.TypeJSON, Nullable: true},
		{Name: "messages", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TicketsTable holds the schema information for the "tickets" table.
	TicketsTable = &schema.Table{
		Name:       "tickets",
		Columns:    TicketsColumns,
		PrimaryKey: []*schema.Column{TicketsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ticket_owner_id",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[1]},
			},
			{
				Name:    "ticket_status",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[9]},
			},
			{
				Name:    "ticket_status_urgency",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[9], TicketsColumns[8]},
			},
			{
				Name:    "ticket_sync_status",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[14]},
			},
			{
				Name:    "ticket_upstream_id",
				Unique:  true,
				Columns: []*schema.Column{TicketsColumns[12]},
				Annotation: &entsql.IndexAnnotation{
					Where: "upstream_id IS NOT NULL",
				},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeInt64, Increment: true},
		{Name: "username", Type: field.TypeString, Nullable: true},
		{Name: "cpf_hash", Type: field.TypeString, Nullable: true},
		{Name: "cpf_masked", Type: field.TypeString, Nullable: true},
		{Name: "client_name", Type: field.TypeString, Nullable: true},
		{Name: "service", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending_verification", "active", "inactive", "suspended"}, Default: "pending_verification"},
		{Name: "is_admin", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_status",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[6]},
			},
			{
				Name:    "user_cpf_hash",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[2]},
				Annotation: &entsql.IndexAnnotation{
					Where: "cpf_hash IS NOT NULL",
				},
			},
		},
	}
	// VerificationAttemptsColumns holds the columns for the "verification_attempts" table.
	VerificationAttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "attempt_number", Type: field.TypeInt},
		{Name: "cpf_masked", Type: field.TypeString, Nullable: true},
		{Name: "cpf_provided", Type: field.TypeString, Nullable: true},
		{Name: "success", Type: field.TypeBool, Default: false},
		{Name: "failure_reason", Type: field.TypeString, Nullable: true},
		{Name: "attempted_at", Type: field.TypeTime},
		{Name: "verification_id", Type: field.TypeString},
	}
	// VerificationAttemptsTable holds the schema information for the "verification_attempts" table.
	VerificationAttemptsTable = &schema.Table{
		Name:       "verification_attempts",
		Columns:    VerificationAttemptsColumns,
		PrimaryKey: []*schema.Column{VerificationAttemptsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "verification_attempts_verification_requests_attempts",
				Columns:    []*schema.Column{VerificationAttemptsColumns[8]},
				RefColumns: []*schema.Column{VerificationRequestsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "verificationattempt_user_id_attempted_at",
				Unique:  false,
				Columns: []*schema.Column{VerificationAttemptsColumns[1], VerificationAttemptsColumns[7]},
			},
		},
	}
	// VerificationRequestsColumns holds the columns for the "verification_requests" table.
	VerificationRequestsColumns = []*schema.Column{
		{Name: "verification_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "username", Type: field.TypeString, Nullable: true},
		{Name: "verification_type", Type: field.TypeEnum, Enums: []string{"auto_checkup", "support_request", "manual_review", "security_check"}},
		{Name: "source_action", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "failed", "expired", "cancelled"}, Default: "pending"},
		{Name: "verified_cpf_masked", Type: field.TypeString, Nullable: true},
		{Name: "verified_cpf_hash", Type: field.TypeString, Nullable: true},
		{Name: "client_snapshot", Type: field.TypeJSON, Nullable: true},
		{Name: "failure_reason", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// VerificationRequestsTable holds the schema information for the "verification_requests" table.
	VerificationRequestsTable = &schema.Table{
		Name:       "verification_requests",
		Columns:    VerificationRequestsColumns,
		PrimaryKey: []*schema.Column{VerificationRequestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "verificationrequest_user_id",
				Unique:  false,
				Columns: []*schema.Column{VerificationRequestsColumns[1]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status IN ('pending', 'in_progress')",
				},
			},
			{
				Name:    "verificationrequest_status",
				Unique:  false,
				Columns: []*schema.Column{VerificationRequestsColumns[5]},
			},
			{
				Name:    "verificationrequest_status_expires_at",
				Unique:  false,
				Columns: []*schema.Column{VerificationRequestsColumns[5], VerificationRequestsColumns[11]},
			},
			{
				Name:    "verificationrequest_user_id",
				Unique:  true,
				Columns: []*schema.Column{VerificationRequestsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		IntegrationRequestsTable,
		SupportConversationsTable,
		TicketsTable,
		UsersTable,
		VerificationAttemptsTable,
		VerificationRequestsTable,
	}
)

func init() {
	VerificationAttemptsTable.ForeignKeys[0].RefTable = VerificationRequestsTable
}
