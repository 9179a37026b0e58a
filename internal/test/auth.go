package test

// HasherStub implements password hashing with canned results.
type HasherStub struct {
	HashResult string
	HashErr    error
	CompareErr error
}

// Hash returns the configured hash or error.
func (s *HasherStub) Hash(password string) (string, error) {
	if s.HashErr != nil {
		return "", s.HashErr
	}
	if s.HashResult != "" {
		return s.HashResult, nil
	}
	return "hashed:" + password, nil
}

// Compare returns the configured comparison error.
func (s *HasherStub) Compare(hash, password string) error {
	return s.CompareErr
}

// StrategyStub implements token issuing and parsing with canned results.
type StrategyStub struct {
	Token    string
	IssueErr error
	UserID   int64
	ParseErr error
	Issued   []int64
	Parsed   []string
}

// IssueToken returns the configured token and records the subject.
func (s *StrategyStub) IssueToken(userID int64) (string, error) {
	s.Issued = append(s.Issued, userID)
	if s.IssueErr != nil {
		return "", s.IssueErr
	}
	if s.Token != "" {
		return s.Token, nil
	}
	return "token", nil
}

// ParseToken returns the configured user ID and records the token.
func (s *StrategyStub) ParseToken(token string) (int64, error) {
	s.Parsed = append(s.Parsed, token)
	if s.ParseErr != nil {
		return 0, s.ParseErr
	}
	return s.UserID, nil
}

// Name identifies the stub strategy.
func (s *StrategyStub) Name() string { return "stub" }

// TokenParserStub parses tokens with canned results for middleware tests.
type TokenParserStub struct {
	UserID int64
	Err    error
	Tokens []string
}

// ParseToken returns the configured user ID and records the token.
func (s *TokenParserStub) ParseToken(token string) (int64, error) {
	s.Tokens = append(s.Tokens, token)
	if s.Err != nil {
		return 0, s.Err
	}
	return s.UserID, nil
}
