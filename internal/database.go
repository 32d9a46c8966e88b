package internal

import (
	"fmt"

	"HSP-PORTAL/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB(cfg *config.Config) error {
	dsn := cfg.Database.DSN()

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto-migrate the schema
	if err := autoMigrate(); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	fmt.Println("Database connected and migrated successfully")
	return nil
}

func autoMigrate() error {
	// Create tables only if they don't exist (preserve existing data)
	fmt.Println("Creating hospital_departments table if not exists...")
	result := DB.Exec(`
        CREATE TABLE IF NOT EXISTS hospital_departments (
            id varchar(191) PRIMARY KEY,
            code varchar(50) UNIQUE,
            name text NOT NULL,
            name_en text,
            description text,
            open_positions int DEFAULT 0,
            is_hiring boolean DEFAULT false,
            sort_order int DEFAULT 0,
            is_active boolean DEFAULT true,
            created_at timestamp(3) NULL,
            updated_at timestamp(3) NULL,
            deleted_at timestamp(3) NULL
        )
    `)
	if result.Error != nil {
		return fmt.Errorf("failed to create hospital_departments table: %w", result.Error)
	}

	DB.Exec("CREATE INDEX IF NOT EXISTS idx_hospital_departments_deleted_at ON hospital_departments(deleted_at)")
	DB.Exec("CREATE INDEX IF NOT EXISTS idx_hospital_departments_is_hiring ON hospital_departments(is_hiring)")
	DB.Exec("CREATE INDEX IF NOT EXISTS idx_hospital_departments_sort_order ON hospital_departments(sort_order)")

	fmt.Println("Creating members table if not exists...")
	result = DB.Exec(`
        CREATE TABLE IF NOT EXISTS members (
            id varchar(191) PRIMARY KEY,
            employee_code varchar(50) UNIQUE,
            prefix varchar(50),
            first_name text NOT NULL,
            last_name text NOT NULL,
            id_number varchar(13),
            email varchar(255),
            phone varchar(50),
            position text,
            department_id varchar(191),
            employment_type varchar(20),
            start_date varchar(10),
            status varchar(20) DEFAULT 'active',
            profile_image_path text,
            created_at timestamp(3) NULL,
            updated_at timestamp(3) NULL,
            deleted_at timestamp(3) NULL
        )
    `)
	if result.Error != nil {
		return fmt.Errorf("failed to create members table: %w", result.Error)
	}

	DB.Exec("CREATE INDEX IF NOT EXISTS idx_members_deleted_at ON members(deleted_at)")
	DB.Exec("CREATE INDEX IF NOT EXISTS idx_members_department_id ON members(department_id)")
	DB.Exec("CREATE INDEX IF NOT EXISTS idx_members_id_number ON members(id_number)")
	DB.Exec("CREATE INDEX IF NOT EXISTS idx_members_email ON members(email)")
	DB.Exec("CREATE INDEX IF NOT EXISTS idx_members_status ON members(status)")

	fmt.Println("Creating applications table if not exists...")
	result = DB.Exec(`
        CREATE TABLE IF NOT EXISTS applications (
            id varchar(191) PRIMARY KEY,
            prefix varchar(50),
            first_name text,
            last_name text,
            id_number varchar(13),
            email varchar(255),
            phone varchar(50),
            applied_position text,
            department_id varchar(191),
            expected_salary varchar(50),
            form_data jsonb,
            status varchar(20) DEFAULT 'submitted',
            submitted_at timestamp(3) NULL,
            reviewed_by varchar(191),
            review_note text,
            created_at timestamp(3) NULL,
            updated_at timestamp(3) NULL,
            deleted_at timestamp(3) NULL
        )
    `)
	if result.Error != nil {
		return fmt.Errorf("failed to create applications table: %w", result.Error)
	}

	DB.Exec("CREATE INDEX IF NOT EXISTS idx_applications_deleted_at ON applications(deleted_at)")
	DB.Exec("CREATE INDEX IF NOT EXISTS idx_applications_department_id ON applications(department_id)")
	DB.Exec("CREATE INDEX IF NOT EXISTS idx_applications_id_number ON applications(id_number)")
	DB.Exec("CREATE INDEX IF NOT EXISTS idx_applications_status ON applications(status)")
	DB.Exec("CREATE INDEX IF NOT EXISTS idx_applications_first_name ON applications(first_name)")
	DB.Exec("CREATE INDEX IF NOT EXISTS idx_applications_last_name ON applications(last_name)")

	fmt.Println("Creating contract_renewals table if not exists...")
	result = DB.Exec(`
        CREATE TABLE IF NOT EXISTS contract_renewals (
            id varchar(191) PRIMARY KEY,
            member_id varchar(191) NOT NULL,
            contract_start varchar(10),
            contract_end varchar(10),
            status varchar(20) DEFAULT 'pending',
            decided_by varchar(191),
            decided_at timestamp(3) NULL,
            note text,
            created_at timestamp(3) NULL,
            updated_at timestamp(3) NULL,
            deleted_at timestamp(3) NULL
        )
    `)
	if result.Error != nil {
		return fmt.Errorf("failed to create contract_renewals table: %w", result.Error)
	}

	DB.Exec("CREATE INDEX IF NOT EXISTS idx_contract_renewals_deleted_at ON contract_renewals(deleted_at)")
	DB.Exec("CREATE INDEX IF NOT EXISTS idx_contract_renewals_member_id ON contract_renewals(member_id)")
	DB.Exec("CREATE INDEX IF NOT EXISTS idx_contract_renewals_contract_end ON contract_renewals(contract_end)")
	DB.Exec("CREATE INDEX IF NOT EXISTS idx_contract_renewals_status ON contract_renewals(status)")

	fmt.Println("Creating official_templates table if not exists...")
	result = DB.Exec(`
        CREATE TABLE IF NOT EXISTS official_templates (
            id varchar(191) PRIMARY KEY,
            name text NOT NULL,
            document_type varchar(50),
            description text,
            file_path text NOT NULL,
            file_size bigint,
            placeholders jsonb,
            orientation varchar(20),
            is_active boolean DEFAULT true,
            created_at timestamp(3) NULL,
            updated_at timestamp(3) NULL,
            deleted_at timestamp(3) NULL
        )
    `)
	if result.Error != nil {
		return fmt.Errorf("failed to create official_templates table: %w", result.Error)
	}

	DB.Exec("CREATE INDEX IF NOT EXISTS idx_official_templates_deleted_at ON official_templates(deleted_at)")
	DB.Exec("CREATE INDEX IF NOT EXISTS idx_official_templates_document_type ON official_templates(document_type)")
	DB.Exec("CREATE INDEX IF NOT EXISTS idx_official_templates_is_active ON official_templates(is_active)")

	fmt.Println("Creating generated_documents table if not exists...")
	result = DB.Exec(`
        CREATE TABLE IF NOT EXISTS generated_documents (
            id varchar(191) PRIMARY KEY,
            application_id varchar(191) NOT NULL,
            template_id varchar(191) NOT NULL,
            docx_path text,
            pdf_path text,
            status varchar(20) DEFAULT 'pending',
            error_message text,
            generated_at timestamp(3) NULL,
            created_at timestamp(3) NULL,
            updated_at timestamp(3) NULL,
            deleted_at timestamp(3) NULL
        )
    `)
	if result.Error != nil {
		return fmt.Errorf("failed to create generated_documents table: %w", result.Error)
	}

	DB.Exec("CREATE INDEX IF NOT EXISTS idx_generated_documents_deleted_at ON generated_documents(deleted_at)")
	DB.Exec("CREATE INDEX IF NOT EXISTS idx_generated_documents_application_id ON generated_documents(application_id)")
	DB.Exec("CREATE INDEX IF NOT EXISTS idx_generated_documents_template_id ON generated_documents(template_id)")

	fmt.Println("Creating activity_logs table if not exists...")
	result = DB.Exec(`
        CREATE TABLE IF NOT EXISTS activity_logs (
            id varchar(191) PRIMARY KEY,
            method varchar(10) NOT NULL,
            path varchar(255) NOT NULL,
            status_code int NOT NULL,
            client_ip varchar(45),
            user_agent text,
            latency bigint NOT NULL,
            created_at timestamp(3) NULL
        )
    `)
	if result.Error != nil {
		return fmt.Errorf("failed to create activity_logs table: %w", result.Error)
	}

	DB.Exec("CREATE INDEX IF NOT EXISTS idx_activity_logs_method ON activity_logs(method)")
	DB.Exec("CREATE INDEX IF NOT EXISTS idx_activity_logs_path ON activity_logs(path)")
	DB.Exec("CREATE INDEX IF NOT EXISTS idx_activity_logs_created_at ON activity_logs(created_at)")

	fmt.Println("Creating statistics table if not exists...")
	result = DB.Exec(`
        CREATE TABLE IF NOT EXISTS statistics (
            id varchar(36) PRIMARY KEY,
            event_type varchar(50) NOT NULL,
            date varchar(10) NOT NULL,
            count bigint NOT NULL DEFAULT 0,
            created_at timestamp(3) NULL,
            updated_at timestamp(3) NULL
        )
    `)
	if result.Error != nil {
		return fmt.Errorf("failed to create statistics table: %w", result.Error)
	}

	DB.Exec("CREATE INDEX IF NOT EXISTS idx_statistics_event_type ON statistics(event_type)")
	DB.Exec("CREATE INDEX IF NOT EXISTS idx_statistics_date ON statistics(date)")
	DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_stat_event_date ON statistics(event_type, date)")

	// Ensure columns added after the first release exist in older databases
	ensureMembersColumns := map[string]string{
		"profile_image_path": "ALTER TABLE members ADD COLUMN profile_image_path text",
		"employment_type":    "ALTER TABLE members ADD COLUMN employment_type varchar(20)",
	}

	for column, stmt := range ensureMembersColumns {
		if err := ensureColumn("members", column, stmt); err != nil {
			return err
		}
	}

	ensureApplicationsColumns := map[string]string{
		"reviewed_by": "ALTER TABLE applications ADD COLUMN reviewed_by varchar(191)",
		"review_note": "ALTER TABLE applications ADD COLUMN review_note text",
	}

	for column, stmt := range ensureApplicationsColumns {
		if err := ensureColumn("applications", column, stmt); err != nil {
			return err
		}
	}

	fmt.Println("Tables created/verified successfully")
	return nil
}

func ensureColumn(table, column, statement string) error {
	if DB.Migrator().HasColumn(table, column) {
		return nil
	}

	fmt.Printf("Adding missing column %s.%s...\n", table, column)
	if err := DB.Exec(statement).Error; err != nil {
		return fmt.Errorf("failed to add column %s.%s: %w", table, column, err)
	}

	return nil
}

func CloseDB() error {
	if DB != nil {
		sqlDB, err := DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
