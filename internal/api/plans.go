package api

import "fmt"

func (c *Client) ListTestPlans() ([]TestPlan, error) {
	body, err := c.get("/test-plans")
	if err != nil {
		return nil, err
	}
	return decodeList[TestPlan](body)
}

func (c *Client) GetTestPlan(id int) (*TestPlan, error) {
	body, err := c.get(fmt.Sprintf("/test-plans/%d", id))
	if err != nil {
		return nil, err
	}
	return decodeOne[TestPlan](body)
}

func (c *Client) CreateTestPlan(input CreateTestPlanInput) (*TestPlan, error) {
	body, err := c.post("/test-plans", input)
	if err != nil {
		return nil, err
	}
	return decodeOne[TestPlan](body)
}

func (c *Client) UpdateTestPlan(id int, input UpdateTestPlanInput) error {
	_, err := c.put(fmt.Sprintf("/test-plans/%d", id), input)
	return err
}

func (c *Client) DeleteTestPlan(id int) error {
	_, err := c.del(fmt.Sprintf("/test-plans/%d", id))
	return err
}
