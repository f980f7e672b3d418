package api

import "fmt"

// ListTestCases fetches the full test case collection.
func (c *Client) ListTestCases() ([]TestCase, error) {
	body, err := c.get("/test-cases")
	if err != nil {
		return nil, err
	}
	return decodeList[TestCase](body)
}

// GetTestCase fetches one test case by id.
func (c *Client) GetTestCase(id int) (*TestCase, error) {
	body, err := c.get(fmt.Sprintf("/test-cases/%d", id))
	if err != nil {
		return nil, err
	}
	return decodeOne[TestCase](body)
}

// CreateTestCase creates a test case. The server assigns the id.
func (c *Client) CreateTestCase(input CreateTestCaseInput) (*TestCase, error) {
	body, err := c.post("/test-cases", input)
	if err != nil {
		return nil, err
	}
	return decodeOne[TestCase](body)
}

// UpdateTestCase submits a partial update for one test case.
func (c *Client) UpdateTestCase(id int, input UpdateTestCaseInput) error {
	_, err := c.put(fmt.Sprintf("/test-cases/%d", id), input)
	return err
}

// DeleteTestCase deletes one test case. The server may refuse with a
// referential-constraint message.
func (c *Client) DeleteTestCase(id int) error {
	_, err := c.del(fmt.Sprintf("/test-cases/%d", id))
	return err
}
