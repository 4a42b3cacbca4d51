package pmclient

import "time"

// User is an account as returned by /users and /auth/register.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	MentorID string `json:"mentor_id,omitempty"`
}

// RegisterInput creates an account. Role is one of student, mentor, panel,
// admin; the backend enforces password length (6–72).
type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Project is a team's project record.
type Project struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description,omitempty"`
	TeamID          string   `json:"team_id,omitempty"`
	MentorID        string   `json:"mentor_id,omitempty"`
	Status          string   `json:"status"`
	StartDate       string   `json:"start_date,omitempty"`
	EndDate         string   `json:"end_date,omitempty"`
	PresentationIDs []string `json:"presentation_ids,omitempty"`
}

// ProjectInput creates a project.
type ProjectInput struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	TeamID      string `json:"team_id"`
	MentorID    string `json:"mentor_id"`
	Status      string `json:"status,omitempty"`
}

// Task statuses are the Kanban columns of the original board.
const (
	TaskPending    = "pending"
	TaskInProgress = "in_progress"
	TaskCompleted  = "completed"
)

// Task is a Kanban card.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	AssignedTo  string     `json:"assigned_to,omitempty"`
	TeamID      string     `json:"team_id,omitempty"`
	ProjectID   string     `json:"project_id,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// TaskInput creates or fully replaces a task.
type TaskInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status,omitempty"`
	AssignedTo  string     `json:"assigned_to,omitempty"`
	TeamID      string     `json:"team_id,omitempty"`
	ProjectID   string     `json:"project_id,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// Team groups students under a mentor.
type Team struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	MentorID    string   `json:"mentor_id,omitempty"`
	Description string   `json:"description,omitempty"`
	Members     []string `json:"members"`
}

// TeamInput creates or updates a team.
type TeamInput struct {
	Name        string   `json:"name"`
	MentorID    string   `json:"mentor_id,omitempty"`
	Description string   `json:"description,omitempty"`
	Members     []string `json:"members,omitempty"`
}

// Presentation is a scheduled evaluation round for a team's project.
type Presentation struct {
	ID               string   `json:"id"`
	TeamID           string   `json:"team_id"`
	ProjectID        string   `json:"project_id"`
	RoundNumber      int      `json:"round_number"`
	Date             string   `json:"date"`
	FileIDs          []string `json:"file_ids,omitempty"`
	FeedbackIDs      []string `json:"feedback_ids,omitempty"`
	AssignedPanelIDs []string `json:"assigned_panel_ids,omitempty"`
}

// PresentationInput schedules a presentation; the deck itself travels as a
// multipart file alongside these fields.
type PresentationInput struct {
	TeamID           string
	ProjectID        string
	RoundNumber      int
	Date             string
	AssignedPanelIDs []string
}

// Announcement is a broadcast message scoped to an audience ("all", "students",
// "mentors", ...).
type Announcement struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Audience  string `json:"audience"`
	CreatedBy string `json:"created_by,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Notification is a per-user event (deadline, message, feedback, ...).
type Notification struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Message   string `json:"message"`
	NotifType string `json:"notif_type"`
	RelatedID string `json:"related_id,omitempty"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at,omitempty"`
}

// ChatMessage belongs to a team thread (TeamID set) or a mentor–student thread
// (MentorID/StudentID set).
type ChatMessage struct {
	ID         string    `json:"id"`
	TeamID     string    `json:"team_id,omitempty"`
	SenderID   string    `json:"sender_id"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
	MentorID   string    `json:"mentor_id,omitempty"`
	StudentID  string    `json:"student_id,omitempty"`
	SenderName string    `json:"sender_name,omitempty"`
}

// ChatMessageInput sends a message into a team or mentor–student thread.
type ChatMessageInput struct {
	TeamID    string `json:"team_id,omitempty"`
	SenderID  string `json:"sender_id"`
	Content   string `json:"content"`
	MentorID  string `json:"mentor_id,omitempty"`
	StudentID string `json:"student_id,omitempty"`
}

// FileInfo is uploaded-file metadata; the content streams separately.
type FileInfo struct {
	ID         string `json:"id"`
	Filename   string `json:"filename"`
	UploaderID string `json:"uploader_id"`
	UploadDate string `json:"upload_date"`
	URL        string `json:"url,omitempty"`
	Version    int    `json:"version"`
	TeamID     string `json:"team_id,omitempty"`
	ProjectID  string `json:"project_id,omitempty"`
}

// ProjectIdea is a proposal submitted by a student, either in-app or through a
// token-gated public link.
type ProjectIdea struct {
	ID           string `json:"id"`
	StudentName  string `json:"student_name"`
	MobileNumber string `json:"mobile_number"`
	Email        string `json:"email"`
	Idea1        string `json:"idea1"`
	Idea2        string `json:"idea2,omitempty"`
	Idea3        string `json:"idea3,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
	TeamID       string `json:"team_id,omitempty"`
	ProjectID    string `json:"project_id,omitempty"`
}

// ProjectIdeaInput submits a proposal.
type ProjectIdeaInput struct {
	StudentName  string `json:"student_name"`
	MobileNumber string `json:"mobile_number"`
	Email        string `json:"email"`
	Idea1        string `json:"idea1"`
	Idea2        string `json:"idea2,omitempty"`
	Idea3        string `json:"idea3,omitempty"`
	TeamID       string `json:"team_id,omitempty"`
	ProjectID    string `json:"project_id,omitempty"`
}

// IdeaLinkInfo is the resolution of a public idea-submission token.
type IdeaLinkInfo struct {
	Valid     bool   `json:"valid"`
	ProjectID string `json:"project_id,omitempty"`
	TeamID    string `json:"team_id,omitempty"`
}

// Feedback is a panel evaluation for a team's presentation round.
type Feedback struct {
	ID          string  `json:"id"`
	TeamID      string  `json:"team_id"`
	ProjectID   string  `json:"project_id"`
	RoundNumber int     `json:"round_number"`
	EvaluatorID string  `json:"evaluator_id"`
	Score       float64 `json:"score"`
	Comments    string  `json:"comments,omitempty"`
	CreatedAt   string  `json:"created_at,omitempty"`
}

// FeedbackInput submits an evaluation.
type FeedbackInput struct {
	TeamID      string  `json:"team_id"`
	ProjectID   string  `json:"project_id"`
	RoundNumber int     `json:"round_number"`
	EvaluatorID string  `json:"evaluator_id"`
	Score       float64 `json:"score"`
	Comments    string  `json:"comments,omitempty"`
}

// StudentFeedback is end-of-term feedback from a student about the program.
type StudentFeedback struct {
	ID               string `json:"id"`
	StudentName      string `json:"student_name"`
	EnrollmentNumber string `json:"enrollment_number"`
	Email            string `json:"email"`
	FeedbackText     string `json:"feedback_text"`
	Rating           int    `json:"rating"`
	CreatedAt        string `json:"created_at,omitempty"`
	TeamID           string `json:"team_id,omitempty"`
	ProjectID        string `json:"project_id,omitempty"`
}

// StudentFeedbackInput submits program feedback (rating 1–5).
type StudentFeedbackInput struct {
	StudentName      string `json:"student_name"`
	EnrollmentNumber string `json:"enrollment_number"`
	Email            string `json:"email"`
	FeedbackText     string `json:"feedback_text"`
	Rating           int    `json:"rating"`
	TeamID           string `json:"team_id,omitempty"`
	ProjectID        string `json:"project_id,omitempty"`
}

// RoundSchedule carries the per-project dates and deadlines of the three
// evaluation rounds.
type RoundSchedule struct {
	ID             string `json:"id"`
	ProjectID      string `json:"project_id"`
	Round1Date     string `json:"round1_date,omitempty"`
	Round1Deadline string `json:"round1_deadline,omitempty"`
	Round2Date     string `json:"round2_date,omitempty"`
	Round2Deadline string `json:"round2_deadline,omitempty"`
	Round3Date     string `json:"round3_date,omitempty"`
	Round3Deadline string `json:"round3_deadline,omitempty"`
}

// RoundScheduleInput upserts a project's round schedule.
type RoundScheduleInput struct {
	ProjectID      string `json:"project_id"`
	Round1Date     string `json:"round1_date,omitempty"`
	Round1Deadline string `json:"round1_deadline,omitempty"`
	Round2Date     string `json:"round2_date,omitempty"`
	Round2Deadline string `json:"round2_deadline,omitempty"`
	Round3Date     string `json:"round3_date,omitempty"`
	Round3Deadline string `json:"round3_deadline,omitempty"`
}

// AllocationRecord is one row of an uploaded allocation CSV.
type AllocationRecord struct {
	ID           string `json:"id"`
	BatchID      string `json:"batch_id"`
	GroupNo      string `json:"group_no"`
	StudentName  string `json:"student_name"`
	EnrollmentNo string `json:"enrollment_no"`
	GuideName    string `json:"guide_name"`
	Title1       string `json:"title_1"`
	Title2       string `json:"title_2"`
	Title3       string `json:"title_3"`
}

// AllocationUploadResult summarizes a CSV ingest.
type AllocationUploadResult struct {
	Inserted int    `json:"inserted"`
	BatchID  string `json:"batch_id"`
	Groups   int    `json:"groups"`
	Guides   int    `json:"guides"`
	Students int    `json:"students"`
}

// AllocationSummary aggregates all uploaded allocation batches.
type AllocationSummary struct {
	TotalStudents int `json:"total_students_from_csv"`
	TotalGuides   int `json:"total_guides_from_csv"`
	TotalTeams    int `json:"total_teams_from_csv"`
}

// DashboardEvent is an upcoming deadline or presentation on the dashboard.
type DashboardEvent struct {
	Event string `json:"event"`
	Date  string `json:"date"`
}

// DashboardStats backs the admin dashboard.
type DashboardStats struct {
	Summary struct {
		TotalStudents     int `json:"total_students"`
		TotalMentors      int `json:"total_mentors"`
		TotalTeams        int `json:"total_teams"`
		TotalProjects     int `json:"total_projects"`
		ActiveStudents24h int `json:"active_students_24h"`
		ActiveMentors24h  int `json:"active_mentors_24h"`
	} `json:"summary"`
	ProjectsPerDepartment map[string]int   `json:"projects_per_department"`
	ProjectStatus         map[string]int   `json:"project_status"`
	UpcomingEvents        []DashboardEvent `json:"upcoming_events"`
}

// MentorReport is one mentor's row in the reports summary.
type MentorReport struct {
	Name  string `json:"name"`
	Teams int    `json:"teams"`
}

// ReportsSummary backs the reports page.
type ReportsSummary struct {
	Totals struct {
		Students int `json:"students"`
		Mentors  int `json:"mentors"`
		Teams    int `json:"teams"`
		Projects int `json:"projects"`
	} `json:"totals"`
	PerMentor     map[string]MentorReport `json:"per_mentor"`
	ProjectStatus map[string]int          `json:"project_status"`
}
