package reading

// Notice is an announcement on the notice board.
type Notice struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Date        string   `json:"date"`
	Views       int      `json:"views"`
	Author      string   `json:"author"`
	Attachments []string `json:"attachments"`
	Important   bool     `json:"important"`
}

type ReviewType string

const (
	ReviewTypeProgram ReviewType = "program"
	ReviewTypeOgeoseo ReviewType = "ogeoseo"
)

type Reviewer struct {
	Name       string `json:"name"`
	Avatar     string `json:"avatar"`
	Department string `json:"department,omitempty"`
}

type ReviewedBook struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Cover  string `json:"cover"`
}

// Review is a member's book review, optionally written for a reading program.
// ProgramID is a plain reference, nothing checks that the program exists.
type Review struct {
	ID        int          `json:"id"`
	Type      ReviewType   `json:"type"`
	User      Reviewer     `json:"user"`
	Book      ReviewedBook `json:"book"`
	Rating    int          `json:"rating"`
	Text      string       `json:"text"`
	Likes     int          `json:"likes"`
	Comments  int          `json:"comments"`
	TimeAgo   string       `json:"timeAgo"`
	Category  string       `json:"category,omitempty"`
	Program   string       `json:"program,omitempty"`
	ProgramID *int         `json:"programId,omitempty"`
}

// Classic is an entry of the "100 classics" catalog.
type Classic struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Publisher   string `json:"publisher"`
	Year        int    `json:"year"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Cover       string `json:"cover"`
	ISBN        string `json:"isbn,omitempty"`
}

const (
	ProgramStatusRecruiting = "recruiting"
	ProgramStatusOngoing    = "ongoing"
	ProgramStatusClosed     = "closed"
)

// Program is a reading program members can join.
type Program struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Host         string `json:"host"`
	Location     string `json:"location"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Capacity     int    `json:"capacity"`
	Participants int    `json:"participants"`
	Status       string `json:"status"`
	Cover        string `json:"cover"`
}

// Stats holds the size of every collection.
type Stats struct {
	Notices  int `json:"notices"`
	Reviews  int `json:"reviews"`
	Classics int `json:"classics"`
	Programs int `json:"programs"`
}

func (n Notice) RecordID() int  { return n.ID }
func (r Review) RecordID() int  { return r.ID }
func (c Classic) RecordID() int { return c.ID }
func (p Program) RecordID() int { return p.ID }
