// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AccountsColumns holds the columns for the "accounts" table.
	AccountsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "username", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password", Type: field.TypeString},
		{Name: "private_key", Type: field.TypeString},
		{Name: "manually_approves_followers", Type: field.TypeBool, Default: false},
	}
	// AccountsTable holds the schema information for the "accounts" table.
	AccountsTable = &schema.Table{
		Name:       "accounts",
		Columns:    AccountsColumns,
		PrimaryKey: []*schema.Column{AccountsColumns[0]},
	}
	// FavouritesColumns holds the columns for the "favourites" table.
	FavouritesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "uri", Type: field.TypeString, Unique: true},
		{Name: "account_uri", Type: field.TypeString},
		{Name: "status_id", Type: field.TypeString},
	}
	// FavouritesTable holds the schema information for the "favourites" table.
	FavouritesTable = &schema.Table{
		Name:       "favourites",
		Columns:    FavouritesColumns,
		PrimaryKey: []*schema.Column{FavouritesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "favourite_account_uri_status_id",
				Unique:  true,
				Columns: []*schema.Column{FavouritesColumns[2], FavouritesColumns[3]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "notified_uri", Type: field.TypeString},
		{Name: "account_uri", Type: field.TypeString},
		{Name: "type", Type: field.TypeString},
		{Name: "status_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notification_notified_uri_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1], NotificationsColumns[5]},
			},
		},
	}
	// RelationshipsColumns holds the columns for the "relationships" table.
	RelationshipsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "owner_uri", Type: field.TypeString},
		{Name: "subject_uri", Type: field.TypeString},
		{Name: "following", Type: field.TypeBool, Default: false},
		{Name: "requested", Type: field.TypeBool, Default: false},
		{Name: "blocking", Type: field.TypeBool, Default: false},
		{Name: "muting", Type: field.TypeBool, Default: false},
	}
	// RelationshipsTable holds the schema information for the "relationships" table.
	RelationshipsTable = &schema.Table{
		Name:       "relationships",
		Columns:    RelationshipsColumns,
		PrimaryKey: []*schema.Column{RelationshipsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "relationship_owner_uri_subject_uri",
				Unique:  true,
				Columns: []*schema.Column{RelationshipsColumns[1], RelationshipsColumns[2]},
			},
		},
	}
	// RemoteObjectsColumns holds the columns for the "remote_objects" table.
	RemoteObjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "remote_id", Type: field.TypeString},
		{Name: "type", Type: field.TypeString},
		{Name: "uri", Type: field.TypeString, Unique: true},
		{Name: "author_uri", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "extra_data", Type: field.TypeBytes, Nullable: true},
		{Name: "extensions", Type: field.TypeBytes, Nullable: true},
	}
	// RemoteObjectsTable holds the schema information for the "remote_objects" table.
	RemoteObjectsTable = &schema.Table{
		Name:       "remote_objects",
		Columns:    RemoteObjectsColumns,
		PrimaryKey: []*schema.Column{RemoteObjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "remoteobject_remote_id",
				Unique:  false,
				Columns: []*schema.Column{RemoteObjectsColumns[1]},
			},
		},
	}
	// StatusColumns holds the columns for the "status" table.
	StatusColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "uri", Type: field.TypeString, Unique: true},
		{Name: "author_uri", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Nullable: true},
		{Name: "content_type", Type: field.TypeString, Nullable: true},
		{Name: "visibility", Type: field.TypeString, Default: "public"},
		{Name: "spoiler_text", Type: field.TypeString, Nullable: true},
		{Name: "sensitive", Type: field.TypeBool, Default: false},
		{Name: "in_reply_to_id", Type: field.TypeString, Nullable: true},
		{Name: "quoting_id", Type: field.TypeString, Nullable: true},
		{Name: "reblog_of_id", Type: field.TypeString, Nullable: true},
		{Name: "instance_host", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// StatusTable holds the schema information for the "status" table.
	StatusTable = &schema.Table{
		Name:       "status",
		Columns:    StatusColumns,
		PrimaryKey: []*schema.Column{StatusColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AccountsTable,
		FavouritesTable,
		NotificationsTable,
		RelationshipsTable,
		RemoteObjectsTable,
		StatusTable,
	}
)

func init() {
}
