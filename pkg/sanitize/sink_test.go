package sanitize_test

// recordingSink captures everything an action or run delivers, for
// assertions.
type recordingSink struct {
	categories []string
	objectIDs  [][]string
	messages   []string
	success    string
	failure    string
}

func (s *recordingSink) AttachInfo(category string, objectIDs []string, message string) error {
	s.categories = append(s.categories, category)
	s.objectIDs = append(s.objectIDs, objectIDs)
	s.messages = append(s.messages, message)
	return nil
}

func (s *recordingSink) MarkRunSuccess(message string) { s.success = message }
func (s *recordingSink) MarkRunFailed(message string)  { s.failure = message }
