/*
go-topcam is the perception core for a top-down (zenith) camera watching a
mobile robot and a set of colored balls on a terrain.

It takes the frames delivered by a camera or video source and turns them into
two kinds of state: a persistent set of ball tracks with stable identities
across frames (tracker package), and the robot's position and heading computed
from two color-coded markers (pose package).  Color segmentation of the raw
frames lives in the segment package and overlay drawing for display in the
render package.

See example code and usage in the example subdirectory.
*/
package topcam
