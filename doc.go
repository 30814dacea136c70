/*
Package cron computes the next run of simple crontab jobs relative to a time of day. A job has a minute
field and an hour field, each either "*" or a single value, and runs at every combination of the two.

Jobs implement the github.com/robfig/cron Schedule interface, so they can be handed to a robfig runner as-is.
*/
package cron
