package store

// SchemaSQL contains the database schema initialization SQL.
const SchemaSQL = `
    -- ==========================================================================
    -- CONTACT TABLE
    -- ==========================================================================
    DEFINE TABLE IF NOT EXISTS contact SCHEMAFULL;
    DEFINE FIELD IF NOT EXISTS name ON contact TYPE string;
    -- Stored as YYYY-MM-DD, validated before it reaches the store
    DEFINE FIELD IF NOT EXISTS date_of_birth ON contact TYPE option<string>;
    DEFINE FIELD IF NOT EXISTS phones ON contact TYPE array<object> DEFAULT [];
    DEFINE FIELD IF NOT EXISTS phones.* ON contact TYPE object FLEXIBLE;
    DEFINE FIELD IF NOT EXISTS emails ON contact TYPE array<object> DEFAULT [];
    DEFINE FIELD IF NOT EXISTS emails.* ON contact TYPE object FLEXIBLE;
    DEFINE FIELD IF NOT EXISTS tags ON contact TYPE array<string> DEFAULT [];
    DEFINE FIELD IF NOT EXISTS created ON contact TYPE datetime DEFAULT time::now();
    DEFINE FIELD IF NOT EXISTS updated ON contact TYPE datetime DEFAULT time::now();

    DEFINE INDEX IF NOT EXISTS contact_name ON contact FIELDS name UNIQUE;
    DEFINE INDEX IF NOT EXISTS contact_tags ON contact FIELDS tags;

    -- ==========================================================================
    -- NOTE TABLE
    -- ==========================================================================
    -- Notes live in their own table so they can be listed and tagged across
    -- contacts; the contact link is optional for free-standing notes.
    DEFINE TABLE IF NOT EXISTS note SCHEMAFULL;
    DEFINE FIELD IF NOT EXISTS text ON note TYPE string;
    DEFINE FIELD IF NOT EXISTS tags ON note TYPE array<string> DEFAULT [];
    DEFINE FIELD IF NOT EXISTS contact ON note TYPE option<record<contact>>;
    DEFINE FIELD IF NOT EXISTS created ON note TYPE datetime DEFAULT time::now();

    DEFINE INDEX IF NOT EXISTS note_contact ON note FIELDS contact;
    DEFINE INDEX IF NOT EXISTS note_tags ON note FIELDS tags;
`
