package api

import "fmt"

func (c *Client) ListMetrics() ([]Metric, error) {
	body, err := c.get("/metrics")
	if err != nil {
		return nil, err
	}
	return decodeList[Metric](body)
}

func (c *Client) CreateMetric(input CreateMetricInput) (*Metric, error) {
	body, err := c.post("/metrics", input)
	if err != nil {
		return nil, err
	}
	return decodeOne[Metric](body)
}

func (c *Client) UpdateMetric(id int, input UpdateMetricInput) error {
	_, err := c.put(fmt.Sprintf("/metrics/%d", id), input)
	return err
}

func (c *Client) DeleteMetric(id int) error {
	_, err := c.del(fmt.Sprintf("/metrics/%d", id))
	return err
}
