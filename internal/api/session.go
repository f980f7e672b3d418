package api

import "net/url"

// GetCurrentUser fetches the authenticated caller. Used at startup and on
// screen mount to drive permission gating; never cached longer than that.
func (c *Client) GetCurrentUser() (*CurrentUser, error) {
	body, err := c.get("/current-user")
	if err != nil {
		return nil, err
	}
	return decodeOne[CurrentUser](body)
}

// GetUserActivity fetches the audit history for one username.
func (c *Client) GetUserActivity(username string) ([]ActivityEntry, error) {
	body, err := c.get("/user-activity/" + url.PathEscape(username))
	if err != nil {
		return nil, err
	}
	return decodeList[ActivityEntry](body)
}
